package binheap

import (
	"cmp"
	"errors"
)

// ErrEmptyHeap is returned by ExtractRoot on an empty heap.
var ErrEmptyHeap = errors.New("binheap: heap is empty")

// Mode fixes the ordering of a heap at creation.
type Mode int

const (
	// Min keeps the smallest value at the root.
	Min Mode = iota
	// Max keeps the largest value at the root.
	Max
)

// String returns "min" or "max".
func (m Mode) String() string {
	if m == Max {
		return "max"
	}

	return "min"
}

// Options holds construction parameters.
type Options struct {
	// Capacity preallocates the backing array; values ≤ 0 are ignored.
	Capacity int
}

// Option configures a Heap.
type Option func(*Options)

// DefaultOptions returns Options with no preallocation.
func DefaultOptions() Options {
	return Options{}
}

// WithCapacity preallocates room for n values.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Capacity = n
		}
	}
}

// Heap is a binary heap stored in an implicit array: the children of index i
// live at 2i+1 and 2i+2. The zero value is not usable; call New or From.
type Heap[T cmp.Ordered] struct {
	mode  Mode
	items []T
}

// New returns an empty heap with the given mode.
func New[T cmp.Ordered](mode Mode, opts ...Option) *Heap[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Heap[T]{mode: mode, items: make([]T, 0, o.Capacity)}
}
