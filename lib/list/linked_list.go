package list

// References:
// https://pkg.go.dev/container/list
// The list keeps a sentinel root element so that the first and the last
// element need no special casing: root.next is the head, root.prev is the
// tail and an empty list is the root linked to itself.

type doublyLinkedList[T comparable] struct {
	root    *NodeElement[T]
	length  int64
	release func(v T)
}

func (l *doublyLinkedList[T]) getRoot() *NodeElement[T] {
	return l.root
}

func (l *doublyLinkedList[T]) init() *doublyLinkedList[T] {
	l.root = &NodeElement[T]{
		listRef: l,
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.length = 0
	return l
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.length
}

// contains rejects elements of other lists and already removed elements by
// a mem address compare through the adjacent links.
func (l *doublyLinkedList[T]) contains(targetE *NodeElement[T]) bool {
	if targetE == nil || targetE.listRef != l || targetE == l.root {
		return false
	}
	if targetE.prev == nil || targetE.next == nil {
		return false
	}
	return targetE.prev.next == targetE && targetE.next.prev == targetE
}

// insert links e immediately after at. at is either the sentinel root or an
// element already verified to be in the list.
func (l *doublyLinkedList[T]) insert(e, at *NodeElement[T]) *NodeElement[T] {
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	l.length++
	return e
}

// unlink detaches e without touching the release callback, so the move
// operations can reuse it.
func (l *doublyLinkedList[T]) unlink(e *NodeElement[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	// avoid memory leaks
	e.prev = nil
	e.next = nil
	l.length--
}

func (l *doublyLinkedList[T]) AppendValue(values ...T) []*NodeElement[T] {
	if len(values) <= 0 {
		return nil
	}
	newElements := make([]*NodeElement[T], 0, len(values))
	for _, v := range values {
		newElements = append(newElements, l.insert(newNodeElement(v, l), l.root.prev))
	}
	return newElements
}

func (l *doublyLinkedList[T]) InsertAfter(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insert(newNodeElement(v, l), dstE)
}

func (l *doublyLinkedList[T]) InsertBefore(v T, dstE *NodeElement[T]) *NodeElement[T] {
	if !l.contains(dstE) {
		return nil
	}
	return l.insert(newNodeElement(v, l), dstE.prev)
}

func (l *doublyLinkedList[T]) Remove(targetE *NodeElement[T]) *NodeElement[T] {
	if l == nil || l.root == nil || !l.contains(targetE) {
		return nil
	}
	l.unlink(targetE)
	targetE.listRef = nil
	if l.release != nil {
		l.release(targetE.Value)
	}
	return targetE
}

// Foreach stops the traversal once fn returns an error and hands it back.
func (l *doublyLinkedList[T]) Foreach(fn func(idx int64, e *NodeElement[T]) error) error {
	if l == nil || l.root == nil || fn == nil {
		return nil
	}
	idx := int64(0)
	for e := l.root.next; e != l.root; e = e.next {
		if err := fn(idx, e); err != nil {
			return err
		}
		idx++
	}
	return nil
}

func (l *doublyLinkedList[T]) ReverseForeach(fn func(idx int64, e *NodeElement[T])) {
	if l == nil || l.root == nil || fn == nil {
		return
	}
	idx := int64(0)
	for e := l.root.prev; e != l.root; e = e.prev {
		fn(idx, e)
		idx++
	}
}

func (l *doublyLinkedList[T]) FindFirst(v T) (*NodeElement[T], bool) {
	for e := l.root.next; e != l.root; e = e.next {
		if e.Value == v {
			return e, true
		}
	}
	return nil, false
}

func (l *doublyLinkedList[T]) Front() *NodeElement[T] {
	if l.length == 0 {
		return nil
	}
	return l.root.next
}

func (l *doublyLinkedList[T]) Back() *NodeElement[T] {
	if l.length == 0 {
		return nil
	}
	return l.root.prev
}

func (l *doublyLinkedList[T]) PushFront(v T) *NodeElement[T] {
	return l.insert(newNodeElement(v, l), l.root)
}

func (l *doublyLinkedList[T]) PushBack(v T) *NodeElement[T] {
	return l.insert(newNodeElement(v, l), l.root.prev)
}

func (l *doublyLinkedList[T]) MoveToFront(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) || l.root.next == targetE {
		return false
	}
	l.unlink(targetE)
	l.insert(targetE, l.root)
	return true
}

func (l *doublyLinkedList[T]) MoveToBack(targetE *NodeElement[T]) bool {
	if !l.contains(targetE) || l.root.prev == targetE {
		return false
	}
	l.unlink(targetE)
	l.insert(targetE, l.root.prev)
	return true
}

func (l *doublyLinkedList[T]) Clear() {
	for e := l.root.next; e != l.root; {
		next := e.next
		e.prev, e.next, e.listRef = nil, nil, nil
		if l.release != nil {
			l.release(e.Value)
		}
		e = next
	}
	l.root.next = l.root
	l.root.prev = l.root
	l.length = 0
}

type LinkedListOpt[T comparable] func(*doublyLinkedList[T])

// WithLinkedListValueRelease hands every value evicted by Remove or Clear
// to fn.
func WithLinkedListValueRelease[T comparable](fn func(v T)) LinkedListOpt[T] {
	return func(l *doublyLinkedList[T]) {
		l.release = fn
	}
}

func NewLinkedList[T comparable](opts ...LinkedListOpt[T]) LinkedList[T] {
	l := new(doublyLinkedList[T]).init()
	for _, o := range opts {
		if o != nil {
			o(l)
		}
	}
	return l
}
