package tree

import (
	"github.com/benz9527/xcoll/lib/infra"
)

type treeMap[K any, V any] struct {
	tree *rbTree[K, V]
}

func (m *treeMap[K, V]) Len() int64 {
	return m.tree.Len()
}

func (m *treeMap[K, V]) Root() RBNode[K, V] {
	return m.tree.Root()
}

// Put upserts. An equal key keeps its node, color and position; only the
// value slot is overwritten, after the old value went through the release
// callback if one is configured.
func (m *treeMap[K, V]) Put(key K, val V) error {
	return m.tree.insert(key, val, false)
}

func (m *treeMap[K, V]) Get(key K) (val V, err error) {
	node := m.tree.search(key)
	if node == nil {
		return val, ErrKeyNotFound
	}
	return node.val, nil
}

func (m *treeMap[K, V]) Contains(key K) bool {
	return m.tree.search(key) != nil
}

func (m *treeMap[K, V]) Remove(key K) error {
	return m.tree.remove(key)
}

func (m *treeMap[K, V]) RemoveMin() (K, V, error) {
	return m.tree.removeMin()
}

func (m *treeMap[K, V]) GetMin() (key K, val V, err error) {
	node, err := m.tree.getMin()
	if err != nil {
		return key, val, err
	}
	return node.key, node.val, nil
}

func (m *treeMap[K, V]) GetMax() (key K, val V, err error) {
	node, err := m.tree.getMax()
	if err != nil {
		return key, val, err
	}
	return node.key, node.val, nil
}

func (m *treeMap[K, V]) Clear() {
	m.tree.clear()
}

// Release is idempotent and safe on a zero-valued map.
func (m *treeMap[K, V]) Release() {
	if m == nil || m.tree == nil {
		return
	}
	m.tree.clear()
}

func (m *treeMap[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	m.tree.foreach(func(idx int64, node *rbNode[K, V]) bool {
		return action(idx, node.color, node.key, node.val)
	})
}

type treeMapIterator[K any, V any] struct {
	it *rbIterator[K, V]
}

func (iter *treeMapIterator[K, V]) HasNext() bool {
	return iter.it.hasNext()
}

func (iter *treeMapIterator[K, V]) Next() (key K, val V, ok bool) {
	node := iter.it.nextNode()
	if node == nil {
		return key, val, false
	}
	return node.key, node.val, true
}

func (iter *treeMapIterator[K, V]) Remove() error {
	return iter.it.remove()
}

func (m *treeMap[K, V]) Iter() MapIterator[K, V] {
	return &treeMapIterator[K, V]{it: m.tree.iter()}
}

type TreeMapOpt[K any, V any] func(*treeMap[K, V])

// WithTreeMapKeyRelease hands every evicted key to fn. Eviction points are
// Remove, RemoveMin, Clear, Release and the iterator's Remove.
func WithTreeMapKeyRelease[K any, V any](fn func(key K)) TreeMapOpt[K, V] {
	return func(m *treeMap[K, V]) {
		m.tree.keyRelease = fn
	}
}

// WithTreeMapValueRelease hands every evicted value to fn, including the
// old value replaced in place by a Put on an existing key.
func WithTreeMapValueRelease[K any, V any](fn func(val V)) TreeMapOpt[K, V] {
	return func(m *treeMap[K, V]) {
		m.tree.valRelease = fn
	}
}

func NewTreeMap[K any, V any](compare infra.Comparator[K], opts ...TreeMapOpt[K, V]) (TreeMap[K, V], error) {
	if compare == nil {
		return nil, ErrInvalidArgument
	}
	m := &treeMap[K, V]{
		tree: &rbTree[K, V]{compare: compare},
	}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	return m, nil
}
