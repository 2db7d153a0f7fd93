package avl

// Node is a single tree node. Its fields are read through accessor methods;
// Left, Right, Height and Balance are safe to call on a nil *Node.
type Node struct {
	key         int
	left, right *Node
	height      int
}

// Key returns the key stored in n.
func (n *Node) Key() int { return n.key }

// Left returns the left child, or nil.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}

	return n.left
}

// Right returns the right child, or nil.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}

	return n.right
}

// Height returns the cached height of the subtree rooted at n (0 for nil).
func (n *Node) Height() int {
	if n == nil {
		return 0
	}

	return n.height
}

// Balance returns height(left) − height(right) (0 for nil).
func (n *Node) Balance() int {
	if n == nil {
		return 0
	}

	return n.left.Height() - n.right.Height()
}

// Tree is an AVL tree of distinct int keys. The zero value is an empty tree.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}
