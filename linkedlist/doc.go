// Package linkedlist provides a generic doubly linked list with constant-time
// push and pop at both ends.
//
// Each node links to its successor and predecessor; head and tail are nil
// together exactly when Len() == 0. Popping the last element resets both.
//
//	l := linkedlist.New[int]()
//	l.PushBack(2)
//	l.PushFront(1)
//	v, _ := l.PopBack() // 2
//
// All and Backward return range-over-func iterators. A List is not safe for
// concurrent use.
package linkedlist
