package avl

import "iter"

// Insert adds key to the tree and reports whether it was added.
// A key that is already present leaves the tree unchanged.
//
// Complexity: O(log n).
func (t *Tree) Insert(key int) bool {
	var added bool
	t.root = insert(t.root, key, &added)
	if added {
		t.size++
	}

	return added
}

// Delete removes key from the tree and reports whether it was present.
//
// Complexity: O(log n).
func (t *Tree) Delete(key int) bool {
	var removed bool
	t.root = remove(t.root, key, &removed)
	if removed {
		t.size--
	}

	return removed
}

// Search reports whether key is in the tree.
func (t *Tree) Search(key int) bool {
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Height returns the height of the tree: 0 when empty, 1 for a single node.
func (t *Tree) Height() int { return t.root.Height() }

// Len returns the number of keys.
func (t *Tree) Len() int { return t.size }

// Root returns the root node for read-only inspection, or nil when empty.
// The returned node must not be retained across mutations.
func (t *Tree) Root() *Node { return t.root }

// Min returns the smallest key; ok is false when the tree is empty.
func (t *Tree) Min() (key int, ok bool) {
	if t.root == nil {
		return 0, false
	}

	return t.root.min().key, true
}

// Max returns the largest key; ok is false when the tree is empty.
func (t *Tree) Max() (key int, ok bool) {
	n := t.root
	if n == nil {
		return 0, false
	}
	for n.right != nil {
		n = n.right
	}

	return n.key, true
}

// InOrder returns all keys in ascending order.
func (t *Tree) InOrder() []int {
	keys := make([]int, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}

	return keys
}

// All returns an iterator over the keys in ascending order.
// The tree must not be mutated during iteration.
func (t *Tree) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		// explicit stack of pending ancestors
		stack := make([]*Node, 0, t.root.Height())
		n := t.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key) {
				return
			}
			n = n.right
		}
	}
}

// Clear removes every key, releasing all nodes.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

func insert(n *Node, key int, added *bool) *Node {
	if n == nil {
		*added = true
		return &Node{key: key, height: 1}
	}
	switch {
	case key < n.key:
		n.left = insert(n.left, key, added)
	case key > n.key:
		n.right = insert(n.right, key, added)
	default:
		return n
	}
	n.fixHeight()

	bf := n.Balance()
	switch {
	case bf > 1 && key < n.left.key: // LL
		return n.rotateRight()
	case bf < -1 && key > n.right.key: // RR
		return n.rotateLeft()
	case bf > 1 && key > n.left.key: // LR
		n.left = n.left.rotateLeft()
		return n.rotateRight()
	case bf < -1 && key < n.right.key: // RL
		n.right = n.right.rotateRight()
		return n.rotateLeft()
	}

	return n
}

func remove(n *Node, key int, removed *bool) *Node {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key:
		n.left = remove(n.left, key, removed)
	case key > n.key:
		n.right = remove(n.right, key, removed)
	default:
		*removed = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := n.right.min()
		n.key = succ.key
		n.right = remove(n.right, succ.key, removed)
	}
	n.fixHeight()

	bf := n.Balance()
	switch {
	case bf > 1 && n.left.Balance() >= 0:
		return n.rotateRight()
	case bf > 1:
		n.left = n.left.rotateLeft()
		return n.rotateRight()
	case bf < -1 && n.right.Balance() <= 0:
		return n.rotateLeft()
	case bf < -1:
		n.right = n.right.rotateRight()
		return n.rotateLeft()
	}

	return n
}

func (n *Node) min() *Node {
	for n.left != nil {
		n = n.left
	}

	return n
}

func (n *Node) fixHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

//	    n            l
//	   / \          / \
//	  l   c  ->    a   n
//	 / \              / \
//	a   b            b   c
func (n *Node) rotateRight() *Node {
	l := n.left
	n.left = l.right
	l.right = n
	n.fixHeight()
	l.fixHeight()

	return l
}

func (n *Node) rotateLeft() *Node {
	r := n.right
	n.right = r.left
	r.left = n
	n.fixHeight()
	r.fixHeight()

	return r
}
