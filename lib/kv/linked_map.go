package kv

// Insertion-order-preserving hash map. Chaining core plus an
// intrusive doubly-linked order thread through the entries,
// oldest to newest. Overwriting an existing key keeps its
// position in the thread.

type linkedMap[K comparable, V any] struct {
	m              *chainMap[K, V]
	oldest, newest *chainEntry[K, V]
}

func (lm *linkedMap[K, V]) link(e *chainEntry[K, V]) {
	e.older = lm.newest
	if lm.newest != nil {
		lm.newest.newer = e
	} else {
		lm.oldest = e
	}
	lm.newest = e
}

func (lm *linkedMap[K, V]) unlink(e *chainEntry[K, V]) {
	if e.older != nil {
		e.older.newer = e.newer
	} else {
		lm.oldest = e.newer
	}
	if e.newer != nil {
		e.newer.older = e.older
	} else {
		lm.newest = e.older
	}
	e.older, e.newer = nil, nil
}

func (lm *linkedMap[K, V]) Len() int64 {
	return lm.m.Len()
}

func (lm *linkedMap[K, V]) Put(key K, val V) {
	lm.m.Put(key, val)
}

func (lm *linkedMap[K, V]) Get(key K) (val V, exists bool) {
	return lm.m.Get(key)
}

func (lm *linkedMap[K, V]) Contains(key K) bool {
	return lm.m.Contains(key)
}

func (lm *linkedMap[K, V]) Delete(key K) bool {
	return lm.m.Delete(key)
}

// Foreach walks oldest to newest.
func (lm *linkedMap[K, V]) Foreach(action func(i uint64, key K, val V) bool) {
	idx := uint64(0)
	for e := lm.oldest; e != nil; e = e.newer {
		if _continue := action(idx, e.key, e.val); !_continue {
			return
		}
		idx++
	}
}

func (lm *linkedMap[K, V]) Purge() {
	lm.m.Purge()
	if lm.oldest != nil || lm.newest != nil {
		panic( /* debug assertion */ "[linked-map] purge left a dangling order thread")
	}
}

func (lm *linkedMap[K, V]) Front() (key K, val V, exists bool) {
	if lm.oldest == nil {
		return key, val, false
	}
	return lm.oldest.key, lm.oldest.val, true
}

func (lm *linkedMap[K, V]) Back() (key K, val V, exists bool) {
	if lm.newest == nil {
		return key, val, false
	}
	return lm.newest.key, lm.newest.val, true
}

type LinkedMapOpt[K comparable, V any] func(*chainMap[K, V])

func WithLinkedMapCapacity[K comparable, V any](capacity uint64) LinkedMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.buckets = make([]*chainEntry[K, V], calcBuckets(capacity))
	}
}

// WithLinkedMapClosableValues makes Purge close values that
// implement Closable. Close errors are logged, not returned.
func WithLinkedMapClosableValues[K comparable, V any]() LinkedMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.closableValues = true
	}
}

// WithLinkedMapKeyRelease hands each evicted key to release,
// on Delete and Purge.
func WithLinkedMapKeyRelease[K comparable, V any](release func(key K)) LinkedMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.keyRelease = release
	}
}

// WithLinkedMapValueRelease hands each evicted value to
// release, on Delete, Purge and Put overwrite.
func WithLinkedMapValueRelease[K comparable, V any](release func(val V)) LinkedMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.valRelease = release
	}
}

func NewLinkedMap[K comparable, V any](opts ...LinkedMapOpt[K, V]) OrderedMap[K, V] {
	lm := &linkedMap[K, V]{
		m: &chainMap[K, V]{
			buckets: make([]*chainEntry[K, V], minChainMapBuckets),
			hasher:  newHasher[K](),
		},
	}
	for _, o := range opts {
		if o != nil {
			o(lm.m)
		}
	}
	lm.m.linkEntry = lm.link
	lm.m.unlinkEntry = lm.unlink
	return lm
}
