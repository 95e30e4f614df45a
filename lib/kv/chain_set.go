package kv

// Key-only facade over the chaining core. The zero-size
// struct{} value keeps entries at key+hash+pointer cost.

type chainSet[K comparable] struct {
	m *chainMap[K, struct{}]
}

func (s *chainSet[K]) Len() int64 {
	return s.m.Len()
}

func (s *chainSet[K]) Add(key K) bool {
	hash := s.m.hasher.Hash(key)
	if s.m.lookup(key, hash) != nil {
		return false
	}
	s.m.Put(key, struct{}{})
	return true
}

func (s *chainSet[K]) Contains(key K) bool {
	return s.m.Contains(key)
}

func (s *chainSet[K]) Remove(key K) bool {
	return s.m.Delete(key)
}

func (s *chainSet[K]) Foreach(action func(i uint64, key K) bool) {
	s.m.Foreach(func(i uint64, key K, _ struct{}) bool {
		return action(i, key)
	})
}

func (s *chainSet[K]) Purge() {
	s.m.Purge()
}

type ChainSetOpt[K comparable] func(*chainMap[K, struct{}])

func WithChainSetCapacity[K comparable](capacity uint64) ChainSetOpt[K] {
	return func(m *chainMap[K, struct{}]) {
		m.buckets = make([]*chainEntry[K, struct{}], calcBuckets(capacity))
	}
}

// WithChainSetKeyRelease hands each evicted key to release,
// on Remove and Purge.
func WithChainSetKeyRelease[K comparable](release func(key K)) ChainSetOpt[K] {
	return func(m *chainMap[K, struct{}]) {
		m.keyRelease = release
	}
}

func NewChainSet[K comparable](opts ...ChainSetOpt[K]) Set[K] {
	m := &chainMap[K, struct{}]{
		buckets: make([]*chainEntry[K, struct{}], minChainMapBuckets),
		hasher:  newHasher[K](),
	}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	return &chainSet[K]{m: m}
}
