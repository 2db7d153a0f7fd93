package linkedlist

import "errors"

// ErrEmptyList is returned by PopFront and PopBack on an empty list.
var ErrEmptyList = errors.New("linkedlist: list is empty")

type node[T any] struct {
	value      T
	next, prev *node[T]
}

// List is a doubly linked sequence with O(1) push and pop at both ends.
// The zero value is an empty list.
type List[T any] struct {
	head, tail *node[T]
	size       int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}
