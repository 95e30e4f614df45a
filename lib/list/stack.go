package list

// LIFO facade over the doubly linked list. The top of the stack is the
// front of the list, so push, pop and peek are all O(1).
type linkedStack[T comparable] struct {
	list *doublyLinkedList[T]
}

func (s *linkedStack[T]) Len() int64 {
	return s.list.Len()
}

func (s *linkedStack[T]) Push(v T) {
	s.list.PushFront(v)
}

func (s *linkedStack[T]) Pop() (v T, err error) {
	top := s.list.Front()
	if top == nil {
		return v, ErrEmptyStack
	}
	v = top.Value
	// Ownership of the popped value moves to the caller, so the release
	// callback must not fire here.
	s.list.unlink(top)
	top.listRef = nil
	return v, nil
}

func (s *linkedStack[T]) Peek() (v T, err error) {
	top := s.list.Front()
	if top == nil {
		return v, ErrEmptyStack
	}
	return top.Value, nil
}

func (s *linkedStack[T]) Clear() {
	s.list.Clear()
}

type StackOpt[T comparable] func(*linkedStack[T])

// WithStackValueRelease hands every value evicted by Clear to fn. Popped
// values are handed to the caller instead.
func WithStackValueRelease[T comparable](fn func(v T)) StackOpt[T] {
	return func(s *linkedStack[T]) {
		s.list.release = fn
	}
}

func NewStack[T comparable](opts ...StackOpt[T]) Stack[T] {
	s := &linkedStack[T]{
		list: new(doublyLinkedList[T]).init(),
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s
}
