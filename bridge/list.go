package bridge

import "github.com/katalvlaran/lvds/linkedlist"

type intList = linkedlist.List[int]

// NewList creates an empty int list.
func (r *Registry) NewList() Handle { return r.register(KindList, linkedlist.New[int]()) }

// ListPushFront inserts v at the head.
func (r *Registry) ListPushFront(h Handle, v int) error {
	return with(r, h, KindList, func(l *intList) error {
		l.PushFront(v)
		return nil
	})
}

// ListPushBack appends v at the tail.
func (r *Registry) ListPushBack(h Handle, v int) error {
	return with(r, h, KindList, func(l *intList) error {
		l.PushBack(v)
		return nil
	})
}

// ListPopFront removes and returns the head.
func (r *Registry) ListPopFront(h Handle) (v int, err error) {
	err = with(r, h, KindList, func(l *intList) error {
		v, err = l.PopFront()
		return err
	})

	return v, err
}

// ListPopBack removes and returns the tail.
func (r *Registry) ListPopBack(h Handle) (v int, err error) {
	err = with(r, h, KindList, func(l *intList) error {
		v, err = l.PopBack()
		return err
	})

	return v, err
}

// ListFront returns the head; ok is false for an empty list.
func (r *Registry) ListFront(h Handle) (v int, ok bool, err error) {
	err = with(r, h, KindList, func(l *intList) error {
		v, ok = l.Front()
		return nil
	})

	return v, ok, err
}

// ListBack returns the tail; ok is false for an empty list.
func (r *Registry) ListBack(h Handle) (v int, ok bool, err error) {
	err = with(r, h, KindList, func(l *intList) error {
		v, ok = l.Back()
		return nil
	})

	return v, ok, err
}

// ListValues returns the values from head to tail.
func (r *Registry) ListValues(h Handle) (vals []int, err error) {
	err = with(r, h, KindList, func(l *intList) error {
		vals = l.Values()
		return nil
	})

	return vals, err
}
