package tree

import (
	"errors"

	"go.uber.org/multierr"

	"github.com/benz9527/xcoll/lib/infra"
)

// rbtree rule validation utilities.

func isRedNode[K any, V any](node RBNode[K, V]) bool {
	return node != nil && node.Color() == Red
}

func isBlackNode[K any, V any](node RBNode[K, V]) bool {
	return node == nil || node.Color() == Black
}

func minimumOf[K any, V any](node RBNode[K, V]) RBNode[K, V] {
	aux := node
	for aux != nil && aux.Left() != nil {
		aux = aux.Left()
	}
	return aux
}

func succOf[K any, V any](node RBNode[K, V]) RBNode[K, V] {
	if node == nil {
		return nil
	}
	if node.Right() != nil {
		return minimumOf(node.Right())
	}
	x, aux := node, node.Parent()
	for aux != nil && x == aux.Right() {
		x, aux = aux, aux.Parent()
	}
	return aux
}

// Inorder traversal through the parent back-pointers.
func walk[K any, V any](view RBTreeView[K, V], action func(node RBNode[K, V]) error) error {
	for aux := minimumOf(view.Root()); aux != nil; aux = succOf(aux) {
		if err := action(aux); err != nil {
			return err
		}
	}
	return nil
}

// RedViolationValidate reports a red root or any red node with a red child.
func RedViolationValidate[K any, V any](view RBTreeView[K, V]) error {
	if isRedNode(view.Root()) {
		return errors.New("rbtree red violation at root")
	}
	return walk(view, func(node RBNode[K, V]) error {
		if isRedNode(node) && (isRedNode(node.Left()) || isRedNode(node.Right())) {
			return errors.New("rbtree red violation")
		}
		return nil
	})
}

func blackDepthToRoot[K any, V any](node RBNode[K, V]) int {
	depth := 0
	for aux := node; aux != nil; aux = aux.Parent() {
		if isBlackNode(aux) {
			depth++
		}
	}
	return depth
}

// BlackViolationValidate checks p4. Every node missing at least one child
// hangs a nil leaf, so equal black depth over those nodes covers every
// root-to-nil path.
func BlackViolationValidate[K any, V any](view RBTreeView[K, V]) error {
	blackDepth := -1
	return walk(view, func(node RBNode[K, V]) error {
		if node.Left() != nil && node.Right() != nil {
			return nil
		}
		if depth := blackDepthToRoot(node); blackDepth < 0 {
			blackDepth = depth
		} else if depth != blackDepth {
			return errors.New("rbtree black violation")
		}
		return nil
	})
}

// OrderViolationValidate reports keys out of strict ascending comparator
// order or a node count diverging from Len.
func OrderViolationValidate[K any, V any](view RBTreeView[K, V], compare infra.Comparator[K]) error {
	var (
		count int64
		prev  RBNode[K, V]
	)
	err := walk(view, func(node RBNode[K, V]) error {
		if prev != nil && compare(prev.Key(), node.Key()) >= 0 {
			return errors.New("rbtree order violation")
		}
		prev = node
		count++
		return nil
	})
	if err != nil {
		return err
	}
	if count != view.Len() {
		return errors.New("rbtree size violation")
	}
	return nil
}

// Validate aggregates every rule violation of the tree instead of stopping
// at the first one.
func Validate[K any, V any](view RBTreeView[K, V], compare infra.Comparator[K]) error {
	return multierr.Combine(
		RedViolationValidate(view),
		BlackViolationValidate(view),
		OrderViolationValidate(view, compare),
	)
}

// TreeHeight is the edge count of the longest root-to-leaf path.
// An empty tree has height -1, a single node height 0.
func TreeHeight[K any, V any](view RBTreeView[K, V]) int64 {
	return heightOf(view.Root())
}

func heightOf[K any, V any](node RBNode[K, V]) int64 {
	if node == nil {
		return -1
	}
	lh, rh := heightOf(node.Left()), heightOf(node.Right())
	if lh > rh {
		return lh + 1
	}
	return rh + 1
}
