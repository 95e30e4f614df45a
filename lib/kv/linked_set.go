package kv

// Insertion-order-preserving key set over the linked map.

type linkedSet[K comparable] struct {
	lm *linkedMap[K, struct{}]
}

func (s *linkedSet[K]) Len() int64 {
	return s.lm.Len()
}

func (s *linkedSet[K]) Add(key K) bool {
	if s.lm.Contains(key) {
		return false
	}
	s.lm.Put(key, struct{}{})
	return true
}

func (s *linkedSet[K]) Contains(key K) bool {
	return s.lm.Contains(key)
}

func (s *linkedSet[K]) Remove(key K) bool {
	return s.lm.Delete(key)
}

// Foreach walks oldest to newest.
func (s *linkedSet[K]) Foreach(action func(i uint64, key K) bool) {
	s.lm.Foreach(func(i uint64, key K, _ struct{}) bool {
		return action(i, key)
	})
}

func (s *linkedSet[K]) Purge() {
	s.lm.Purge()
}

func (s *linkedSet[K]) Front() (key K, exists bool) {
	key, _, exists = s.lm.Front()
	return key, exists
}

func (s *linkedSet[K]) Back() (key K, exists bool) {
	key, _, exists = s.lm.Back()
	return key, exists
}

type LinkedSetOpt[K comparable] func(*chainMap[K, struct{}])

func WithLinkedSetCapacity[K comparable](capacity uint64) LinkedSetOpt[K] {
	return func(m *chainMap[K, struct{}]) {
		m.buckets = make([]*chainEntry[K, struct{}], calcBuckets(capacity))
	}
}

// WithLinkedSetKeyRelease hands each evicted key to release,
// on Remove and Purge.
func WithLinkedSetKeyRelease[K comparable](release func(key K)) LinkedSetOpt[K] {
	return func(m *chainMap[K, struct{}]) {
		m.keyRelease = release
	}
}

func NewLinkedSet[K comparable](opts ...LinkedSetOpt[K]) OrderedSet[K] {
	lm := &linkedMap[K, struct{}]{
		m: &chainMap[K, struct{}]{
			buckets: make([]*chainEntry[K, struct{}], minChainMapBuckets),
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
	return &linkedSet[K]{lm: lm}
}
