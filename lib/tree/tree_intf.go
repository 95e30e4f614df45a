package tree

import "errors"

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	// ErrInvalidArgument reports a nil comparator passed to a constructor.
	ErrInvalidArgument = errors.New("[rbtree] nil comparator")
	// ErrDuplicateKey reports a set insert whose key is already present.
	ErrDuplicateKey = errors.New("[rbtree] duplicate key")
	// ErrKeyNotFound reports a get or remove on an absent key.
	ErrKeyNotFound = errors.New("[rbtree] key not found")
	// ErrEmptyTree reports a min or max query on an empty tree.
	ErrEmptyTree = errors.New("[rbtree] empty tree")
	// ErrInvalidIteratorState reports an iterator remove without a preceding
	// successful next, or a double remove of the same element.
	ErrInvalidIteratorState = errors.New("[rbtree] invalid iterator state")
)

type RBNode[K any, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

// RBTreeView is the read-only slice of a tree facade consumed by the
// rule validation utilities.
type RBTreeView[K any, V any] interface {
	Len() int64
	Root() RBNode[K, V]
}

// TreeSet is the key-only facade. Insert rejects duplicates.
type TreeSet[K any] interface {
	Len() int64
	Root() RBNode[K, struct{}]
	Insert(key K) error
	Contains(key K) bool
	Remove(key K) error
	RemoveMin() (K, error)
	GetMin() (K, error)
	GetMax() (K, error)
	Clear()
	Release()
	Foreach(action func(idx int64, color RBColor, key K) bool)
	Iter() SetIterator[K]
}

// TreeMap is the key-value facade. Put upserts instead of rejecting.
type TreeMap[K any, V any] interface {
	Len() int64
	Root() RBNode[K, V]
	Put(key K, val V) error
	Get(key K) (V, error)
	Contains(key K) bool
	Remove(key K) error
	RemoveMin() (K, V, error)
	GetMin() (K, V, error)
	GetMax() (K, V, error)
	Clear()
	Release()
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	Iter() MapIterator[K, V]
}

// SetIterator walks a TreeSet in ascending comparator order.
// Remove deletes the most recently yielded key and keeps the walk valid.
type SetIterator[K any] interface {
	HasNext() bool
	Next() (K, bool)
	Remove() error
}

// MapIterator walks a TreeMap in ascending comparator order.
type MapIterator[K any, V any] interface {
	HasNext() bool
	Next() (K, V, bool)
	Remove() error
}
