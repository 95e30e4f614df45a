package list

import "errors"

// Note that the doubly linked list is not thread safe.
// The singly linked list could be implemented by using the doubly linked
// list, so it is a meaningless exercise to implement it separately.

var (
	// ErrEmptyStack reports a pop or peek on an empty stack.
	ErrEmptyStack = errors.New("[stack] empty stack")
)

// LinkedList is the doubly linked list interface.
type LinkedList[T comparable] interface {
	Len() int64
	// AppendValue appends the values to the list l and returns the new elements.
	AppendValue(values ...T) []*NodeElement[T]
	// InsertAfter inserts a value v as a new element immediately after element dstE.
	// If dstE is not an element of l, the value v will not be inserted.
	InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T]
	// InsertBefore inserts a value v as a new element immediately before element dstE.
	// If dstE is not an element of l, the value v will not be inserted.
	InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T]
	// Remove removes targetE from l if targetE is an element of list l and
	// returns targetE or nil if the list is empty. The evicted value is
	// handed to the release callback if one is configured.
	Remove(targetE *NodeElement[T]) *NodeElement[T]
	// Foreach traverses the list l and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, e *NodeElement[T]) error) error
	// ReverseForeach iterates the list in reverse order, calling fn for each
	// element, until all elements have been visited.
	ReverseForeach(fn func(idx int64, e *NodeElement[T]))
	// FindFirst finds the first element whose value equals v.
	FindFirst(v T) (*NodeElement[T], bool)
	// Front returns the first element of doubly linked list l or nil if the list is empty.
	Front() *NodeElement[T]
	// Back returns the last element of doubly linked list l or nil if the list is empty.
	Back() *NodeElement[T]
	// PushFront inserts a new element e with value v at the front of list l and returns e.
	PushFront(v T) *NodeElement[T]
	// PushBack inserts a new element e with value v at the back of list l and returns e.
	PushBack(v T) *NodeElement[T]
	// MoveToFront moves an element e to the front of list l.
	MoveToFront(targetE *NodeElement[T]) bool
	// MoveToBack moves an element e to the back of list l.
	MoveToBack(targetE *NodeElement[T]) bool
	// Clear removes all elements, handing each value to the release callback.
	Clear()
}

// Stack is the LIFO facade over the doubly linked list.
type Stack[T comparable] interface {
	Len() int64
	Push(v T)
	Pop() (T, error)
	Peek() (T, error)
	Clear()
}
