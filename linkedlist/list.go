package linkedlist

import "iter"

// PushFront inserts v before the head.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// PushBack appends v after the tail.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the head value.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.size--
	n.next = nil

	return n.value, nil
}

// PopBack removes and returns the tail value.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.tail
	l.tail = n.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.size--
	n.prev = nil

	return n.value, nil
}

// Front returns the head value; ok is false when the list is empty.
func (l *List[T]) Front() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}

	return l.head.value, true
}

// Back returns the tail value; ok is false when the list is empty.
func (l *List[T]) Back() (v T, ok bool) {
	if l.tail == nil {
		return v, false
	}

	return l.tail.value, true
}

// Len returns the number of values.
func (l *List[T]) Len() int { return l.size }

// Values returns the values from head to tail.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}

// All yields the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Clear drops every node.
func (l *List[T]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}
