package binheap

import (
	"cmp"
	"fmt"
)

// CheckHeap verifies that no child ranks above its parent.
func CheckHeap[T cmp.Ordered](h *Heap[T]) error {
	for i := 1; i < len(h.items); i++ {
		p := (i - 1) / 2
		if h.before(h.items[i], h.items[p]) {
			return fmt.Errorf("%s-heap violated: items[%d]=%v above parent items[%d]=%v",
				h.mode, i, h.items[i], p, h.items[p])
		}
	}

	return nil
}
