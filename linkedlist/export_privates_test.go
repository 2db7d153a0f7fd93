package linkedlist

import "fmt"

// CheckLinks walks the list both ways and checks the ends, the back links
// and the length.
func CheckLinks[T any](l *List[T]) error {
	if (l.head == nil) != (l.tail == nil) {
		return fmt.Errorf("head nil=%t, tail nil=%t", l.head == nil, l.tail == nil)
	}
	if l.head != nil && (l.head.prev != nil || l.tail.next != nil) {
		return fmt.Errorf("ends are linked outward")
	}
	n, last := 0, (*node[T])(nil)
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.prev != last {
			return fmt.Errorf("node %d: prev link broken", n)
		}
		last = cur
		n++
	}
	if last != l.tail {
		return fmt.Errorf("forward walk ends away from tail")
	}
	if n != l.size {
		return fmt.Errorf("length %d, counted %d", l.size, n)
	}

	return nil
}
