package binheap

import (
	"cmp"
	"slices"
)

// From builds a heap holding values using bottom-up heapify in O(n).
// The input slice is copied.
func From[T cmp.Ordered](mode Mode, values ...T) *Heap[T] {
	h := &Heap[T]{mode: mode, items: slices.Clone(values)}
	if h.items == nil {
		h.items = []T{}
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Insert appends v and sifts it up until its parent no longer ranks below it.
//
// Complexity: O(log n).
func (h *Heap[T]) Insert(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Peek returns the root without removing it; ok is false when empty.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.items) == 0 {
		return v, false
	}

	return h.items[0], true
}

// ExtractRoot removes and returns the root. The last value moves to the root
// and sifts down, swapping with the higher-priority child while needed.
//
// Complexity: O(log n).
func (h *Heap[T]) ExtractRoot() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmptyHeap
	}
	root := h.items[0]
	h.items[0] = h.items[n-1]
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	if len(h.items) > 1 {
		h.siftDown(0)
	}

	return root, nil
}

// Len returns the number of values.
func (h *Heap[T]) Len() int { return len(h.items) }

// Mode returns the ordering fixed at creation.
func (h *Heap[T]) Mode() Mode { return h.mode }

// Values returns a copy of the backing array in heap order, suitable for
// drawing the implicit tree level by level.
func (h *Heap[T]) Values() []T { return slices.Clone(h.items) }

// Clear removes every value.
func (h *Heap[T]) Clear() {
	clear(h.items)
	h.items = h.items[:0]
}

// before reports whether a must sit above b.
func (h *Heap[T]) before(a, b T) bool {
	if h.mode == Max {
		return a > b
	}

	return a < b
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		best := i
		if l := 2*i + 1; l < n && h.before(h.items[l], h.items[best]) {
			best = l
		}
		if r := 2*i + 2; r < n && h.before(h.items[r], h.items[best]) {
			best = r
		}
		if best == i {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
