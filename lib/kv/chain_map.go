package kv

import "log/slog"

// Separate-chaining hash map.
// Hash slot mapped to a singly-linked bucket of entries.
// Collisions stay inside the bucket list, so a tombstone
// scheme and its load factor decay are not needed here.

/*
 bucket |   0    |   1    |   2    |   3    | ... |  n-1   |
--------|--------|--------|--------|--------|     |--------|
 chain  | (5,7)  |  nil   | (39,8) |  nil   | ... |  nil   |
        |   |    |        |   |    |        |     |        |
        | (21,1) |        |  nil   |        |     |        |
        |   |    |        |        |        |     |        |
        |  nil   |        |        |        |     |        |

1. bucket index
The full 64-bit hash is reduced by bitwise AND with len-1,
which requires the bucket count to stay a power of two.

2. load factor
Ratio of resident entries to buckets. Above 0.75 the table
doubles and every entry is relinked into the new buckets.
The cached entry hash avoids rehashing the keys.

3. deletion
Unlink from the bucket chain. No shift-backwards, no
tombstones.
*/

const (
	minChainMapBuckets    = 8
	chainMapLoadFactorNum = 3 // resident*4 > buckets*3, i.e. 0.75
	chainMapLoadFactorDen = 4
)

type chainEntry[K comparable, V any] struct {
	next *chainEntry[K, V] // bucket chain
	hash uint64            // cached, avoids rehash on grow
	key  K
	val  V

	// Insertion-order thread, used by the linked variants
	// only. Plain chain map leaves them nil.
	older, newer *chainEntry[K, V]
}

type chainMap[K comparable, V any] struct {
	buckets        []*chainEntry[K, V]
	hasher         Hasher[K]
	resident       uint64
	closableValues bool
	keyRelease     func(key K)
	valRelease     func(val V)
	// linkEntry/unlinkEntry hooks let the insertion-order
	// variants thread entries without a second container.
	linkEntry   func(e *chainEntry[K, V])
	unlinkEntry func(e *chainEntry[K, V])
}

func (m *chainMap[K, V]) Len() int64 {
	return int64(m.resident)
}

func (m *chainMap[K, V]) lookup(key K, hash uint64) *chainEntry[K, V] {
	for e := m.buckets[hash&uint64(len(m.buckets)-1)]; e != nil; e = e.next {
		if e.hash == hash && e.key == key {
			return e
		}
	}
	return nil
}

func (m *chainMap[K, V]) Put(key K, val V) {
	hash := m.hasher.Hash(key)
	if e := m.lookup(key, hash); e != nil {
		if m.valRelease != nil {
			m.valRelease(e.val)
		}
		e.val = val
		return
	}
	if /* above 0.75 */ (m.resident+1)*chainMapLoadFactorDen > uint64(len(m.buckets))*chainMapLoadFactorNum {
		m.grow()
	}
	i := hash & uint64(len(m.buckets)-1)
	e := &chainEntry[K, V]{
		next: m.buckets[i],
		hash: hash,
		key:  key,
		val:  val,
	}
	m.buckets[i] = e
	m.resident++
	if m.linkEntry != nil {
		m.linkEntry(e)
	}
}

func (m *chainMap[K, V]) Get(key K) (val V, exists bool) {
	if e := m.lookup(key, m.hasher.Hash(key)); e != nil {
		return e.val, true
	}
	return val, false
}

func (m *chainMap[K, V]) Contains(key K) bool {
	return m.lookup(key, m.hasher.Hash(key)) != nil
}

func (m *chainMap[K, V]) Delete(key K) bool {
	hash := m.hasher.Hash(key)
	i := hash & uint64(len(m.buckets)-1)
	var prev *chainEntry[K, V]
	for e := m.buckets[i]; e != nil; prev, e = e, e.next {
		if e.hash != hash || e.key != key {
			continue
		}
		if prev == nil {
			m.buckets[i] = e.next
		} else {
			prev.next = e.next
		}
		e.next = nil
		m.resident--
		if m.unlinkEntry != nil {
			m.unlinkEntry(e)
		}
		m.release(e)
		return true
	}
	return false
}

func (m *chainMap[K, V]) release(e *chainEntry[K, V]) {
	if m.keyRelease != nil {
		m.keyRelease(e.key)
	}
	if m.valRelease != nil {
		m.valRelease(e.val)
	}
}

// Foreach walks the buckets in slot order. Entries hashed to
// the same bucket appear newest first. The walk order is not
// stable across grows.
func (m *chainMap[K, V]) Foreach(action func(i uint64, key K, val V) bool) {
	idx := uint64(0)
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			if _continue := action(idx, e.key, e.val); !_continue {
				return
			}
			idx++
		}
	}
}

func (m *chainMap[K, V]) Purge() {
	for i, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			e.next = nil
			if m.unlinkEntry != nil {
				m.unlinkEntry(e)
			}
			if m.closableValues {
				if closer, ok := any(e.val).(Closable); ok && closer != nil {
					if err := closer.Close(); err != nil {
						slog.Error("Purge info", "error", err)
					}
				}
			}
			m.release(e)
			e = next
		}
		m.buckets[i] = nil
	}
	m.resident = 0
	// A fresh seed after purge keeps bucket layouts from
	// being replayable across reuse.
	m.hasher = newSeedHasher[K](m.hasher)
}

func (m *chainMap[K, V]) grow() {
	oldBuckets := m.buckets
	m.buckets = make([]*chainEntry[K, V], len(oldBuckets)<<1)
	mask := uint64(len(m.buckets) - 1)
	for _, head := range oldBuckets {
		for e := head; e != nil; {
			next := e.next
			i := e.hash & mask
			e.next = m.buckets[i]
			m.buckets[i] = e
			e = next
		}
	}
}

func calcBuckets(capacity uint64) uint64 {
	buckets := uint64(minChainMapBuckets)
	// Size so the requested capacity fits under the load
	// factor without an immediate grow.
	for buckets*chainMapLoadFactorNum < capacity*chainMapLoadFactorDen {
		buckets <<= 1
	}
	return buckets
}

type ChainMapOpt[K comparable, V any] func(*chainMap[K, V])

// WithChainMapCapacity sizes the bucket array so that
// capacity entries fit without triggering a grow.
func WithChainMapCapacity[K comparable, V any](capacity uint64) ChainMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.buckets = make([]*chainEntry[K, V], calcBuckets(capacity))
	}
}

// WithChainMapClosableValues makes Purge close values that
// implement Closable. Close errors are logged, not returned.
func WithChainMapClosableValues[K comparable, V any]() ChainMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.closableValues = true
	}
}

// WithChainMapKeyRelease hands each evicted key to release,
// on Delete and Purge.
func WithChainMapKeyRelease[K comparable, V any](release func(key K)) ChainMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.keyRelease = release
	}
}

// WithChainMapValueRelease hands each evicted value to
// release, on Delete, Purge and Put overwrite.
func WithChainMapValueRelease[K comparable, V any](release func(val V)) ChainMapOpt[K, V] {
	return func(m *chainMap[K, V]) {
		m.valRelease = release
	}
}

func NewChainMap[K comparable, V any](opts ...ChainMapOpt[K, V]) Map[K, V] {
	m := &chainMap[K, V]{
		buckets: make([]*chainEntry[K, V], minChainMapBuckets),
		hasher:  newHasher[K](),
	}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	return m
}
