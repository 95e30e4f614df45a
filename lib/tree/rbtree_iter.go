package tree

// In-order iterator threading through the parent back-pointers, the same
// strategy as Foreach. No auxiliary stack outlives any call.
//
// The successor of the yielded node is computed eagerly on every advance.
// That makes the iterator's own Remove safe: by the time the tree mutates,
// the node to resume from is already cached, and the delete path preserves
// the node identity of every survivor (see removeNode), so rotations during
// the fixup cannot invalidate the cached pointer.
//
// Mutating the tree through anything but the iterator's own Remove while the
// iterator is live leaves its state stale. The caller owns that discipline.
type rbIterator[K any, V any] struct {
	tree *rbTree[K, V]
	next *rbNode[K, V]
	cur  *rbNode[K, V]
}

func (it *rbIterator[K, V]) hasNext() bool {
	return it.next != nil
}

func (it *rbIterator[K, V]) nextNode() *rbNode[K, V] {
	if it.next == nil {
		it.cur = nil
		return nil
	}
	it.cur = it.next
	it.next = it.next.succ()
	return it.cur
}

// remove deletes the most recently yielded node. Without a preceding
// successful advance, or after a remove for the same node, there is nothing
// to delete and the call reports ErrInvalidIteratorState.
func (it *rbIterator[K, V]) remove() error {
	if it.cur == nil {
		return ErrInvalidIteratorState
	}
	z := it.cur
	it.cur = nil
	it.tree.removeNode(z)
	it.tree.release(z)
	return nil
}

func (tree *rbTree[K, V]) iter() *rbIterator[K, V] {
	return &rbIterator[K, V]{
		tree: tree,
		next: tree.root.minimum(),
	}
}
