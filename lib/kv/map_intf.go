package kv

import "io"

// Closable marks values that hold a resource Purge should
// close for them.
type Closable interface {
	io.Closer
}

// Map is an unordered in-memory key-value container.
// Not thread-safe. Callers hold the synchronization
// responsibility if the map escapes a single goroutine.
type Map[K comparable, V any] interface {
	Len() int64
	// Put inserts the key-val pair or overwrites the value
	// of an existing key in place.
	Put(key K, val V)
	Get(key K) (val V, exists bool)
	Contains(key K) bool
	// Delete reports whether the key was present.
	Delete(key K) bool
	// Foreach stops early once action returns false.
	Foreach(action func(i uint64, key K, val V) bool)
	// Purge drops all pairs and hands each of them to the
	// release callbacks if any.
	Purge()
}

// OrderedMap additionally keeps the first-insertion order
// of the keys. Foreach walks in that order. Overwriting an
// existing key does not move it.
type OrderedMap[K comparable, V any] interface {
	Map[K, V]
	// Front returns the least recently inserted pair.
	Front() (key K, val V, exists bool)
	// Back returns the most recently inserted pair.
	Back() (key K, val V, exists bool)
}

// Set is an unordered in-memory key container.
type Set[K comparable] interface {
	Len() int64
	// Add reports whether the key was newly added.
	Add(key K) bool
	Contains(key K) bool
	// Remove reports whether the key was present.
	Remove(key K) bool
	// Foreach stops early once action returns false.
	Foreach(action func(i uint64, key K) bool)
	Purge()
}

// OrderedSet keeps the first-insertion order of the keys.
type OrderedSet[K comparable] interface {
	Set[K]
	Front() (key K, exists bool)
	Back() (key K, exists bool)
}
