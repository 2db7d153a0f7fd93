package avl

import "fmt"

// CheckInvariants walks t and returns the first violated property:
// cached heights, |balance| ≤ 1, strict key ordering, and the key count.
func CheckInvariants(t *Tree) error {
	count := 0
	var walk func(n *Node, lo, hi *int) (int, error)
	walk = func(n *Node, lo, hi *int) (int, error) {
		if n == nil {
			return 0, nil
		}
		count++
		if lo != nil && n.key <= *lo {
			return 0, fmt.Errorf("key %d not greater than lower bound %d", n.key, *lo)
		}
		if hi != nil && n.key >= *hi {
			return 0, fmt.Errorf("key %d not less than upper bound %d", n.key, *hi)
		}
		lh, err := walk(n.left, lo, &n.key)
		if err != nil {
			return 0, err
		}
		rh, err := walk(n.right, &n.key, hi)
		if err != nil {
			return 0, err
		}
		h := 1 + max(lh, rh)
		if h != n.height {
			return 0, fmt.Errorf("node %d: cached height %d, actual %d", n.key, n.height, h)
		}
		if b := lh - rh; b < -1 || b > 1 {
			return 0, fmt.Errorf("node %d: balance %d", n.key, b)
		}

		return h, nil
	}
	if _, err := walk(t.root, nil, nil); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size %d, reachable nodes %d", t.size, count)
	}

	return nil
}
