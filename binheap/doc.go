// Package binheap provides a binary min- or max-heap over any ordered type.
//
// The heap lives in a single slice (children of i at 2i+1 and 2i+2), so
// Values can hand a renderer the exact array layout. The ordering mode is
// chosen once in New or From and cannot change; a different mode needs a
// new heap.
//
//	h := binheap.New[int](binheap.Max)
//	h.Insert(3)
//	h.Insert(9)
//	top, _ := h.ExtractRoot() // 9
//
// Complexity: Insert and ExtractRoot O(log n), Peek O(1), From O(n).
//
// A Heap is not safe for concurrent use.
package binheap
