package queue

import (
	"container/heap"
)

type pqItem[E comparable] struct {
	priority int64
	index    int64
	value    E
}

func (item *pqItem[E]) Index() int64 {
	if item == nil {
		return -1
	}
	return item.index
}

func (item *pqItem[E]) Value() (val E) {
	if item == nil {
		// return empty value by default
		return
	}
	return item.value
}

func (item *pqItem[E]) Priority() int64 {
	if item == nil {
		return -1
	}
	return item.priority
}

func (item *pqItem[E]) SetIndex(idx int64) {
	if item == nil {
		return
	}
	item.index = idx
}

func (item *pqItem[E]) SetPriority(pri int64) {
	if item == nil {
		return
	}
	item.priority = pri
}

func NewPriorityQueueItem[E comparable](val E, pri int64) PQItem[E] {
	return &pqItem[E]{
		priority: pri,
		value:    val,
		index:    0,
	}
}

// arrayPQ adapts the item slice to the stdlib heap contract. The item index
// is maintained on every swap so a caller can reprioritize later.
type arrayPQ[E comparable] struct {
	arr        []PQItem[E]
	comparator PQItemLessThenComparator[E]
}

func (pq *arrayPQ[E]) Len() int { return len(pq.arr) }
func (pq *arrayPQ[E]) Less(i, j int) bool {
	return pq.comparator(pq.arr[i], pq.arr[j]) == iLTj
}
func (pq *arrayPQ[E]) Swap(i, j int) {
	pq.arr[i], pq.arr[j] = pq.arr[j], pq.arr[i]
	pq.arr[i].SetIndex(int64(i))
	pq.arr[j].SetIndex(int64(j))
}

func (pq *arrayPQ[E]) Pop() interface{} {
	prev := pq.arr
	n := len(prev)
	if n <= 0 {
		return nil
	}

	item := prev[n-1]
	item.SetIndex(-1)
	prev[n-1] = *new(PQItem[E]) // nil object
	pq.arr = prev[:n-1]
	return item
}

func (pq *arrayPQ[E]) Push(i interface{}) {
	item, ok := i.(PQItem[E])
	if !ok {
		return
	}

	item.SetIndex(int64(len(pq.arr)))
	pq.arr = append(pq.arr, item)
}

type ArrayPriorityQueue[E comparable] struct {
	queue *arrayPQ[E]
}

func (pq *ArrayPriorityQueue[E]) Len() int64 {
	return int64(len(pq.queue.arr))
}

func (pq *ArrayPriorityQueue[E]) Pop() ReadOnlyPQItem[E] {
	if len(pq.queue.arr) == 0 {
		return nil
	}
	item := heap.Pop(pq.queue)
	return item.(ReadOnlyPQItem[E])
}

func (pq *ArrayPriorityQueue[E]) Push(item PQItem[E]) {
	heap.Push(pq.queue, item)
}

func (pq *ArrayPriorityQueue[E]) Peek() ReadOnlyPQItem[E] {
	if len(pq.queue.arr) == 0 {
		return nil
	}
	return pq.queue.arr[0]
}

func defaultPQItemComparator[E comparable]() PQItemLessThenComparator[E] {
	return func(i, j ReadOnlyPQItem[E]) CmpEnum {
		res := i.Priority() - j.Priority()
		if res > 0 {
			return iGTj
		} else if res < 0 {
			return iLTj
		}
		return iEQj
	}
}

type ArrayPriorityQueueOption[E comparable] func(*ArrayPriorityQueue[E])

func NewArrayPriorityQueue[E comparable](opts ...ArrayPriorityQueueOption[E]) PriorityQueue[E] {
	pq := &ArrayPriorityQueue[E]{
		queue: new(arrayPQ[E]),
	}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}
	if pq.queue.arr == nil {
		pq.queue.arr = make([]PQItem[E], 0, 64)
	}
	if pq.queue.comparator == nil {
		pq.queue.comparator = defaultPQItemComparator[E]()
	}
	return pq
}

func WithArrayPriorityQueueCapacity[E comparable](capacity int) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if capacity <= 0 {
			capacity = 64
		}
		pq.queue.arr = make([]PQItem[E], 0, capacity)
	}
}

func WithArrayPriorityQueueComparator[E comparable](fn PQItemLessThenComparator[E]) ArrayPriorityQueueOption[E] {
	return func(pq *ArrayPriorityQueue[E]) {
		if fn == nil {
			fn = defaultPQItemComparator[E]()
		}
		pq.queue.comparator = fn
	}
}
