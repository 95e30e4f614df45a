package queue

import "errors"

var (
	// ErrEmptyDeque reports a pop or peek on an empty deque.
	ErrEmptyDeque = errors.New("[deque] empty deque")
	// ErrEmptyQueue reports a poll or peek on an empty queue.
	ErrEmptyQueue = errors.New("[queue] empty queue")
)

// Deque is a double-ended queue over a growable ring buffer.
type Deque[E any] interface {
	Len() int64
	Cap() int64
	PushFront(v E)
	PushBack(v E)
	PopFront() (E, error)
	PopBack() (E, error)
	PeekFront() (E, error)
	PeekBack() (E, error)
	Clear()
}

// Queue is the FIFO facade over the deque.
type Queue[E any] interface {
	Len() int64
	Offer(v E)
	Poll() (E, error)
	Peek() (E, error)
	Clear()
}

// Reference:
// https://github.com/nsqio/nsq/blob/master/internal/pqueue/pqueue.go

type PriorityQueue[E comparable] interface {
	Len() int64
	Push(item PQItem[E])
	Pop() ReadOnlyPQItem[E]
	Peek() ReadOnlyPQItem[E]
}

type ReadOnlyPQItem[E comparable] interface {
	Index() int64
	Value() E
	Priority() int64
}

type CmpEnum int64

const (
	iLTj CmpEnum = -1 + iota
	iEQj
	iGTj
)

// PQItemLessThenComparator
// Priority queue item comparator
// if return 1, i > j
// if return 0, i == j
// if return -1, i < j
type PQItemLessThenComparator[E comparable] func(i, j ReadOnlyPQItem[E]) CmpEnum

type PQItem[E comparable] interface {
	ReadOnlyPQItem[E]
	SetIndex(idx int64)
	SetPriority(pri int64)
}
