package bridge

import "github.com/katalvlaran/lvds/binheap"

// NewHeap creates an empty int heap with a fixed mode.
func (r *Registry) NewHeap(mode binheap.Mode) Handle {
	return r.register(KindHeap, binheap.New[int](mode))
}

// HeapInsert adds v.
func (r *Registry) HeapInsert(h Handle, v int) error {
	return with(r, h, KindHeap, func(hp *binheap.Heap[int]) error {
		hp.Insert(v)
		return nil
	})
}

// HeapPeek returns the root; ok is false for an empty heap.
func (r *Registry) HeapPeek(h Handle) (v int, ok bool, err error) {
	err = with(r, h, KindHeap, func(hp *binheap.Heap[int]) error {
		v, ok = hp.Peek()
		return nil
	})

	return v, ok, err
}

// HeapExtractRoot removes and returns the root.
func (r *Registry) HeapExtractRoot(h Handle) (v int, err error) {
	err = with(r, h, KindHeap, func(hp *binheap.Heap[int]) error {
		v, err = hp.ExtractRoot()
		return err
	})

	return v, err
}

// HeapValues returns the backing array in heap order.
func (r *Registry) HeapValues(h Handle) (vals []int, err error) {
	err = with(r, h, KindHeap, func(hp *binheap.Heap[int]) error {
		vals = hp.Values()
		return nil
	})

	return vals, err
}
