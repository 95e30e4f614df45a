package tree

import (
	"github.com/benz9527/xcoll/lib/infra"
)

type treeSet[K any] struct {
	tree *rbTree[K, struct{}]
}

func (s *treeSet[K]) Len() int64 {
	return s.tree.Len()
}

func (s *treeSet[K]) Root() RBNode[K, struct{}] {
	return s.tree.Root()
}

// Insert rejects an equal key with ErrDuplicateKey and leaves the tree
// untouched.
func (s *treeSet[K]) Insert(key K) error {
	return s.tree.insert(key, struct{}{}, true)
}

func (s *treeSet[K]) Contains(key K) bool {
	return s.tree.search(key) != nil
}

func (s *treeSet[K]) Remove(key K) error {
	return s.tree.remove(key)
}

func (s *treeSet[K]) RemoveMin() (K, error) {
	key, _, err := s.tree.removeMin()
	return key, err
}

func (s *treeSet[K]) GetMin() (key K, err error) {
	node, err := s.tree.getMin()
	if err != nil {
		return key, err
	}
	return node.key, nil
}

func (s *treeSet[K]) GetMax() (key K, err error) {
	node, err := s.tree.getMax()
	if err != nil {
		return key, err
	}
	return node.key, nil
}

func (s *treeSet[K]) Clear() {
	s.tree.clear()
}

// Release is idempotent and safe on a zero-valued set.
func (s *treeSet[K]) Release() {
	if s == nil || s.tree == nil {
		return
	}
	s.tree.clear()
}

func (s *treeSet[K]) Foreach(action func(idx int64, color RBColor, key K) bool) {
	s.tree.foreach(func(idx int64, node *rbNode[K, struct{}]) bool {
		return action(idx, node.color, node.key)
	})
}

type treeSetIterator[K any] struct {
	it *rbIterator[K, struct{}]
}

func (iter *treeSetIterator[K]) HasNext() bool {
	return iter.it.hasNext()
}

func (iter *treeSetIterator[K]) Next() (key K, ok bool) {
	node := iter.it.nextNode()
	if node == nil {
		return key, false
	}
	return node.key, true
}

func (iter *treeSetIterator[K]) Remove() error {
	return iter.it.remove()
}

func (s *treeSet[K]) Iter() SetIterator[K] {
	return &treeSetIterator[K]{it: s.tree.iter()}
}

type TreeSetOpt[K any] func(*treeSet[K])

// WithTreeSetKeyRelease hands every evicted key to fn. Eviction points are
// Remove, RemoveMin, Clear, Release and the iterator's Remove.
func WithTreeSetKeyRelease[K any](fn func(key K)) TreeSetOpt[K] {
	return func(s *treeSet[K]) {
		s.tree.keyRelease = fn
	}
}

func NewTreeSet[K any](compare infra.Comparator[K], opts ...TreeSetOpt[K]) (TreeSet[K], error) {
	if compare == nil {
		return nil, ErrInvalidArgument
	}
	s := &treeSet[K]{
		tree: &rbTree[K, struct{}]{compare: compare},
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	return s, nil
}
