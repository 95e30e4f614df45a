package tree

import (
	"github.com/benz9527/xcoll/lib/infra"
)

type rbNode[K any, V any] struct {
	parent *rbNode[K, V]
	left   *rbNode[K, V]
	right  *rbNode[K, V]
	key    K
	val    V
	color  RBColor
}

func (node *rbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *rbNode[K, V]) Key() K {
	return node.key
}

func (node *rbNode[K, V]) Val() V {
	return node.val
}

func (node *rbNode[K, V]) Left() RBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *rbNode[K, V]) Parent() RBNode[K, V] {
	if node == nil || node.parent == nil {
		return nil
	}
	return node.parent
}

func (node *rbNode[K, V]) Right() RBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

// A nil node is a leaf and counts as black (p2).
func (node *rbNode[K, V]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *rbNode[K, V]) isBlack() bool {
	return node == nil || node.color == Black
}

func (node *rbNode[K, V]) isRoot() bool {
	return node != nil && node.parent == nil
}

func (node *rbNode[K, V]) Direction() RBDirection {
	if node == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}

	if node.isRoot() {
		return Root
	}
	if node == node.parent.left {
		return Left
	}
	return Right
}

func (node *rbNode[K, V]) sibling() *rbNode[K, V] {
	switch node.Direction() {
	case Left:
		return node.parent.right
	case Right:
		return node.parent.left
	default:

	}
	return nil
}

func (node *rbNode[K, V]) uncle() *rbNode[K, V] {
	return node.parent.sibling()
}

func (node *rbNode[K, V]) hasUncle() bool {
	return !node.isRoot() && !node.parent.isRoot() && node.uncle() != nil
}

func (node *rbNode[K, V]) grandpa() *rbNode[K, V] {
	return node.parent.parent
}

func (node *rbNode[K, V]) fixLink() {
	if node.left != nil {
		node.left.parent = node
	}
	if node.right != nil {
		node.right.parent = node
	}
}

func (node *rbNode[K, V]) minimum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *rbNode[K, V]) maximum() *rbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (node *rbNode[K, V]) succ() *rbNode[K, V] {
	x := node
	if x == nil {
		return nil
	}

	if x.right != nil {
		return x.right.minimum()
	}

	aux := x.parent
	// Backtrack to father node that is the x's succ.
	for aux != nil && x == aux.right {
		x = aux
		aux = aux.parent
	}
	return aux
}

type rbTree[K any, V any] struct {
	root       *rbNode[K, V]
	count      int64
	compare    infra.Comparator[K]
	keyRelease func(K)
	valRelease func(V)
}

func (tree *rbTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *rbTree[K, V]) Root() RBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, V]) leftRotate(x *rbNode[K, V]) {
	if x == nil || x.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := x.parent, x.right
	dir := x.Direction()
	x.right, y.left = y.left, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	y.parent = p
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, V]) rightRotate(x *rbNode[K, V]) {
	if x == nil || x.left == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := x.parent, x.left
	dir := x.Direction()
	x.left, y.right = y.right, x

	x.fixLink()
	y.fixLink()

	switch dir {
	case Root:
		tree.root = y
	case Left:
		p.left = y
	case Right:
		p.right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	y.parent = p
}

// insert walks from the root by the comparator and links a new red node at
// the reached null slot.
// ifNotPresent disables the in-place value replacement for an equal key and
// reports ErrDuplicateKey instead (set facade behavior).
// i1: Empty rbtree, insert directly, but root node is painted to black.
func (tree *rbTree[K, V]) insert(key K, val V, ifNotPresent bool) error {
	if /* i1 */ tree.root == nil {
		tree.root = &rbNode[K, V]{
			key: key,
			val: val,
		}
		tree.count++
		return nil
	}

	var x, y *rbNode[K, V] = tree.root, nil
	res := int64(0)
	for x != nil {
		y = x
		res = tree.compare(key, x.key)
		if /* equal */ res == 0 {
			break
		} else /* less */ if res < 0 {
			x = x.left
		} else /* greater */ {
			x = x.right
		}
	}

	if y == nil {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] insert a new value into nil node")
	}

	if /* equal */ res == 0 {
		if /* replace disabled */ ifNotPresent {
			return ErrDuplicateKey
		}
		if tree.valRelease != nil {
			tree.valRelease(y.val)
		}
		y.val = val
		return nil
	}

	z := &rbNode[K, V]{
		key:    key,
		val:    val,
		color:  Red,
		parent: y,
	}
	if /* less */ res < 0 {
		y.left = z
	} else /* greater */ {
		y.right = z
	}

	tree.count++
	tree.insertRebalance(z)
	return nil
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X's parent P is black and P is root, so hold p3 and p4.

im2: Current node X's parent P is red and P is root, repaint P into black.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K, V]) insertRebalance(x *rbNode[K, V]) {
	for x != nil {
		if x.isRoot() {
			if x.isRed() {
				x.color = Black
			}
			return
		}

		if x.parent.isBlack() {
			return
		}

		if x.parent.isRoot() {
			if /* im1 */ x.parent.isBlack() {
				return
			} else /* im2 */ {
				x.parent.color = Black
				return
			}
		}

		if /* im3 */ x.hasUncle() && x.uncle().isRed() {
			x.parent.color = Black
			x.uncle().color = Black
			gp := x.grandpa()
			gp.color = Red
			x = gp
			continue
		}

		if !x.hasUncle() || x.uncle().isBlack() {
			dir := x.Direction()
			if /* im4 */ dir != x.parent.Direction() {
				p := x.parent
				switch dir {
				case Left:
					tree.rightRotate(p)
				case Right:
					tree.leftRotate(p)
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] insert violate (im4)")
				}
				x = p // enter im5 to fix
			}

			switch /* im5 */ x.parent.Direction() {
			case Left:
				tree.rightRotate(x.grandpa())
			case Right:
				tree.leftRotate(x.grandpa())
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert violate (im5)")
			}

			x.parent.color = Black
			x.sibling().color = Red
			return
		}
	}
}

// transplant replaces the subtree rooted at u with the subtree rooted at v
// in u's parent child slot. v may be nil.
func (tree *rbTree[K, V]) transplant(u, v *rbNode[K, V]) {
	switch u.Direction() {
	case Root:
		tree.root = v
	case Left:
		u.parent.left = v
	case Right:
		u.parent.right = v
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to transplant")
	}
	if v != nil {
		v.parent = u.parent
	}
}

/*
r1: Node Z has no left child. Transplant Z's right child (may be nil) into
Z's slot.

r2: Node Z has no right child. Transplant Z's left child into Z's slot.

r3: Node Z has both children. The in-order succ Y of Z is the minimum of
Z's right subtree and carries no left child.
(1) Y is Z's direct right child: Y keeps its right subtree, X is Y's right.
(2) Otherwise detach Y first (transplant Y's right into Y's old slot),
then re-parent Z's right subtree under Y.
Finally transplant Z with Y, hand over Z's left subtree and Z's color, so
the removed color is Y's original one.

The node identity of every surviving node is preserved. Only Z leaves the
tree, which keeps cached successor pointers (iterator removal) valid.

If the removed color is black, p4 is broken at X's position and the fixup
has to run with (X, XParent) because X may be a nil leaf.
*/
func (tree *rbTree[K, V]) removeNode(z *rbNode[K, V]) {
	var x, xParent *rbNode[K, V]
	y := z
	yColor := y.color

	if /* r1 */ z.left == nil {
		x, xParent = z.right, z.parent
		tree.transplant(z, z.right)
	} else if /* r2 */ z.right == nil {
		x, xParent = z.left, z.parent
		tree.transplant(z, z.left)
	} else /* r3 */ {
		y = z.right.minimum()
		yColor = y.color
		x = y.right
		if /* r3 (1) */ y.parent == z {
			xParent = y
		} else /* r3 (2) */ {
			xParent = y.parent
			tree.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		tree.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	// Unlink node
	z.parent, z.left, z.right = nil, nil, nil
	tree.count--

	if yColor == Black {
		tree.removeRebalance(x, xParent)
	}
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

X carries the double-black after a black node left the tree. X may be a nil
leaf, so the walk is driven by (X, XParent).
Sc is the same direction to X and Sd the opposite direction, both are X's
sibling's child nodes.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. (Otherwise, red-violation)
(1) X is left node of P, left rotate P. Mirror for right.
(2) Repaint S into black, P into red. X's new sibling is black, enter rm2-rm5.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Sibling S, nephew Sc and Sd are black, parent P is red.
Repaint S into red and P into black, one black unit restored, done.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: All of parent P, sibling S, nephew Sc and Sd are black.
Repaint S into red to satisfy p4 locally, then the whole subtree under P is
short one black unit. Recursive to handle P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Sibling S is black, nephew Sc is red and Sd is black. P is either color.
(1) X is left node of P, right rotate S. Mirror for right.
(2) Repaint S into red, Sc into black.
Enter into rm5 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: Sibling S is black, nephew Sd is red. P is either color.
(1) X is left node of P, left rotate P. Mirror for right.
(2) Swap P and S's color, repaint Sd into black. Done.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[K, V]) removeRebalance(x, xParent *rbNode[K, V]) {
	for x != tree.root && x.isBlack() {
		if xParent == nil {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] double-black node without parent")
		}

		if x == xParent.left {
			sibling := xParent.right
			if /* rm1 */ sibling.isRed() {
				sibling.color = Black
				xParent.color = Red
				tree.leftRotate(xParent)
				sibling = xParent.right
			}
			if sibling == nil {
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] double-black node without sibling")
			}

			if sibling.left.isBlack() && sibling.right.isBlack() {
				if /* rm2 */ xParent.isRed() {
					sibling.color = Red
					xParent.color = Black
					return
				}
				/* rm3 */
				sibling.color = Red
				x = xParent
				xParent = x.parent
				continue
			}

			if /* rm4 */ sibling.right.isBlack() {
				if sibling.left != nil {
					sibling.left.color = Black
				}
				sibling.color = Red
				tree.rightRotate(sibling)
				sibling = xParent.right
			}

			/* rm5 */
			sibling.color = xParent.color
			xParent.color = Black
			if sibling.right != nil {
				sibling.right.color = Black
			}
			tree.leftRotate(xParent)
			x, xParent = tree.root, nil
		} else {
			sibling := xParent.left
			if /* rm1 */ sibling.isRed() {
				sibling.color = Black
				xParent.color = Red
				tree.rightRotate(xParent)
				sibling = xParent.left
			}
			if sibling == nil {
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] double-black node without sibling")
			}

			if sibling.left.isBlack() && sibling.right.isBlack() {
				if /* rm2 */ xParent.isRed() {
					sibling.color = Red
					xParent.color = Black
					return
				}
				/* rm3 */
				sibling.color = Red
				x = xParent
				xParent = x.parent
				continue
			}

			if /* rm4 */ sibling.left.isBlack() {
				if sibling.right != nil {
					sibling.right.color = Black
				}
				sibling.color = Red
				tree.leftRotate(sibling)
				sibling = xParent.left
			}

			/* rm5 */
			sibling.color = xParent.color
			xParent.color = Black
			if sibling.left != nil {
				sibling.left.color = Black
			}
			tree.rightRotate(xParent)
			x, xParent = tree.root, nil
		}
	}

	if x != nil {
		x.color = Black
	}
}

func (tree *rbTree[K, V]) search(key K) *rbNode[K, V] {
	for aux := tree.root; aux != nil; {
		res := tree.compare(key, aux.key)
		if res == 0 {
			return aux
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil
}

// release hands the evicted payload to the configured callbacks.
func (tree *rbTree[K, V]) release(node *rbNode[K, V]) {
	if tree.keyRelease != nil {
		tree.keyRelease(node.key)
	}
	if tree.valRelease != nil {
		tree.valRelease(node.val)
	}
}

func (tree *rbTree[K, V]) remove(key K) error {
	z := tree.search(key)
	if z == nil {
		return ErrKeyNotFound
	}
	tree.removeNode(z)
	tree.release(z)
	return nil
}

func (tree *rbTree[K, V]) removeMin() (key K, val V, err error) {
	z := tree.root.minimum()
	if z == nil {
		return key, val, ErrEmptyTree
	}
	key, val = z.key, z.val
	tree.removeNode(z)
	tree.release(z)
	return key, val, nil
}

func (tree *rbTree[K, V]) getMin() (*rbNode[K, V], error) {
	if _min := tree.root.minimum(); _min != nil {
		return _min, nil
	}
	return nil, ErrEmptyTree
}

func (tree *rbTree[K, V]) getMax() (*rbNode[K, V], error) {
	if _max := tree.root.maximum(); _max != nil {
		return _max, nil
	}
	return nil, ErrEmptyTree
}

// Inorder traversal to implement the DFS.
// Threads through the parent back-pointers, no auxiliary stack.
func (tree *rbTree[K, V]) foreach(action func(idx int64, node *rbNode[K, V]) bool) {
	idx := int64(0)
	for aux := tree.root.minimum(); aux != nil; aux = aux.succ() {
		if !action(idx, aux) {
			return
		}
		idx++
	}
}

// clear tears the whole tree down in post order through the parent
// back-pointers, so the teardown never recurses and never allocates.
// Every evicted payload is handed to the release callbacks.
func (tree *rbTree[K, V]) clear() {
	aux := tree.root
	tree.root = nil
	tree.count = 0
	for aux != nil {
		if aux.left != nil {
			aux = aux.left
			continue
		}
		if aux.right != nil {
			aux = aux.right
			continue
		}

		p := aux.parent
		if p != nil {
			if p.left == aux {
				p.left = nil
			} else {
				p.right = nil
			}
		}
		tree.release(aux)
		aux.parent = nil
		aux = p
	}
}
