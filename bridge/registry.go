package bridge

import (
	"fmt"
	"slices"
)

type clearer interface{ Clear() }

func (r *Registry) register(kind Kind, v any) Handle {
	h := Handle(r.next.Add(1))
	r.entries.Store(h, &entry{kind: kind, value: v})

	return h
}

// with runs fn on the instance behind h while holding the handle's lock.
func with[T any](r *Registry, h Handle, kind Kind, fn func(T) error) error {
	e, ok := r.entries.Load(h)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dead {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	if e.kind != kind {
		return fmt.Errorf("%w: handle %d is %s, not %s", ErrKindMismatch, h, e.kind, kind)
	}

	return fn(e.value.(T))
}

// Destroy releases the instance behind h. The handle is never issued again.
func (r *Registry) Destroy(h Handle) error {
	e, ok := r.entries.LoadAndDelete(h)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dead = true
	if c, ok := e.value.(clearer); ok {
		c.Clear()
	}
	e.value = nil

	return nil
}

// Kind returns the structure kind behind h.
func (r *Registry) Kind(h Handle) (Kind, error) {
	e, ok := r.entries.Load(h)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}

	return e.kind, nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int { return r.entries.Size() }

// Handles returns the live handles in ascending order.
func (r *Registry) Handles() []Handle {
	out := make([]Handle, 0, r.entries.Size())
	r.entries.Range(func(h Handle, _ *entry) bool {
		out = append(out, h)
		return true
	})
	slices.Sort(out)

	return out
}

// Close destroys every live handle.
func (r *Registry) Close() {
	for _, h := range r.Handles() {
		_ = r.Destroy(h)
	}
}
