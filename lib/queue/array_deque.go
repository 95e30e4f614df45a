package queue

const minDequeCapacity = 16

// arrayDeque is a growable ring buffer. The capacity stays a power of two
// so the wrap-around is a bitmask instead of a modulo.
type arrayDeque[E any] struct {
	buf   []E
	head  int
	count int
}

func (dq *arrayDeque[E]) Len() int64 {
	return int64(dq.count)
}

func (dq *arrayDeque[E]) Cap() int64 {
	return int64(len(dq.buf))
}

func (dq *arrayDeque[E]) mask() int {
	return len(dq.buf) - 1
}

func (dq *arrayDeque[E]) grow() {
	if dq.buf == nil {
		dq.buf = make([]E, minDequeCapacity)
		return
	}
	if dq.count < len(dq.buf) {
		return
	}
	next := make([]E, len(dq.buf)<<1)
	n := copy(next, dq.buf[dq.head:])
	copy(next[n:], dq.buf[:dq.head])
	dq.buf = next
	dq.head = 0
}

func (dq *arrayDeque[E]) PushFront(v E) {
	dq.grow()
	dq.head = (dq.head - 1) & dq.mask()
	dq.buf[dq.head] = v
	dq.count++
}

func (dq *arrayDeque[E]) PushBack(v E) {
	dq.grow()
	dq.buf[(dq.head+dq.count)&dq.mask()] = v
	dq.count++
}

func (dq *arrayDeque[E]) PopFront() (v E, err error) {
	if dq.count == 0 {
		return v, ErrEmptyDeque
	}
	v = dq.buf[dq.head]
	dq.buf[dq.head] = *new(E) // release the slot for GC
	dq.head = (dq.head + 1) & dq.mask()
	dq.count--
	return v, nil
}

func (dq *arrayDeque[E]) PopBack() (v E, err error) {
	if dq.count == 0 {
		return v, ErrEmptyDeque
	}
	tail := (dq.head + dq.count - 1) & dq.mask()
	v = dq.buf[tail]
	dq.buf[tail] = *new(E) // release the slot for GC
	dq.count--
	return v, nil
}

func (dq *arrayDeque[E]) PeekFront() (v E, err error) {
	if dq.count == 0 {
		return v, ErrEmptyDeque
	}
	return dq.buf[dq.head], nil
}

func (dq *arrayDeque[E]) PeekBack() (v E, err error) {
	if dq.count == 0 {
		return v, ErrEmptyDeque
	}
	return dq.buf[(dq.head+dq.count-1)&dq.mask()], nil
}

func (dq *arrayDeque[E]) Clear() {
	clear(dq.buf)
	dq.head = 0
	dq.count = 0
}

type ArrayDequeOpt[E any] func(*arrayDeque[E])

// WithArrayDequeCapacity rounds the initial capacity up to a power of two.
func WithArrayDequeCapacity[E any](capacity int) ArrayDequeOpt[E] {
	return func(dq *arrayDeque[E]) {
		if capacity <= minDequeCapacity {
			capacity = minDequeCapacity
		}
		rounded := minDequeCapacity
		for rounded < capacity {
			rounded <<= 1
		}
		dq.buf = make([]E, rounded)
	}
}

func NewArrayDeque[E any](opts ...ArrayDequeOpt[E]) Deque[E] {
	dq := &arrayDeque[E]{}
	for _, o := range opts {
		if o != nil {
			o(dq)
		}
	}
	return dq
}

// FIFO facade.
type arrayQueue[E any] struct {
	dq *arrayDeque[E]
}

func (q *arrayQueue[E]) Len() int64 {
	return q.dq.Len()
}

func (q *arrayQueue[E]) Offer(v E) {
	q.dq.PushBack(v)
}

func (q *arrayQueue[E]) Poll() (v E, err error) {
	if v, err = q.dq.PopFront(); err != nil {
		return v, ErrEmptyQueue
	}
	return v, nil
}

func (q *arrayQueue[E]) Peek() (v E, err error) {
	if v, err = q.dq.PeekFront(); err != nil {
		return v, ErrEmptyQueue
	}
	return v, nil
}

func (q *arrayQueue[E]) Clear() {
	q.dq.Clear()
}

func NewArrayQueue[E any](opts ...ArrayDequeOpt[E]) Queue[E] {
	dq := &arrayDeque[E]{}
	for _, o := range opts {
		if o != nil {
			o(dq)
		}
	}
	return &arrayQueue[E]{dq: dq}
}
