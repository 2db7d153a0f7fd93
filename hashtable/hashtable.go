package hashtable

import "fmt"

// New returns an empty table with size slots.
func New[V any](size int, opts ...Option) (*Table[V], error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[V]{slots: make([]Slot[V], size), hash: o.Hasher}, nil
}

// start returns the first slot of key's probe sequence.
func (t *Table[V]) start(key string) int {
	return int(t.hash(key) % uint64(len(t.slots)))
}

// Insert stores key at the first empty slot of its probe sequence.
// Tombstones are skipped, never reused. The table is unchanged on error.
//
// Errors: ErrTableFull, ErrDuplicateKey.
func (t *Table[V]) Insert(key string, v V) (Probe, error) {
	size := len(t.slots)
	p := Probe{Start: t.start(key), Slot: -1}
	if t.occupied == size {
		return p, fmt.Errorf("%w: %d of %d slots occupied", ErrTableFull, t.occupied, size)
	}

	for i := 0; i < size; i++ {
		idx := (p.Start + i) % size
		s := &t.slots[idx]
		switch s.State {
		case Empty:
			p.Slot = idx
			*s = Slot[V]{State: Occupied, Key: key, Value: v, Probes: p.Count}
			t.occupied++

			return p, nil
		case Occupied:
			if s.Key == key {
				return p, fmt.Errorf("%w: %q at slot %d", ErrDuplicateKey, key, idx)
			}
		}
		p.Count++
	}

	return p, fmt.Errorf("%w: no empty slot within %d probes", ErrTableFull, size)
}

// find walks key's probe sequence through tombstones and mismatched keys,
// stopping at the first empty slot or after size probes.
func (t *Table[V]) find(key string) Probe {
	size := len(t.slots)
	p := Probe{Start: t.start(key), Slot: -1}
	for i := 0; i < size; i++ {
		idx := (p.Start + i) % size
		s := &t.slots[idx]
		if s.State == Empty {
			break
		}
		if s.State == Occupied && s.Key == key {
			p.Slot = idx

			return p
		}
		p.Count++
	}

	return p
}

// Search returns the value stored under key. On a hit Probe.Count equals the
// count recorded when key was inserted.
func (t *Table[V]) Search(key string) (V, Probe, bool) {
	var zero V
	p := t.find(key)
	if p.Slot < 0 {
		return zero, p, false
	}

	return t.slots[p.Slot].Value, p, true
}

// Remove marks key's slot as a tombstone. It reports whether key was present.
func (t *Table[V]) Remove(key string) (Probe, bool) {
	p := t.find(key)
	if p.Slot < 0 {
		return p, false
	}
	s := &t.slots[p.Slot]
	var zero V
	s.State = Deleted
	s.Value = zero
	t.occupied--
	t.tombstones++

	return p, true
}

// Len returns the number of live keys.
func (t *Table[V]) Len() int { return t.occupied }

// Size returns the fixed number of slots.
func (t *Table[V]) Size() int { return len(t.slots) }

// Tombstones returns the number of deleted slots.
func (t *Table[V]) Tombstones() int { return t.tombstones }

// Slots returns a copy of every slot, in index order.
func (t *Table[V]) Slots() []Slot[V] {
	out := make([]Slot[V], len(t.slots))
	copy(out, t.slots)

	return out
}

// Clear empties every slot, tombstones included. The size is kept.
func (t *Table[V]) Clear() {
	clear(t.slots)
	t.occupied = 0
	t.tombstones = 0
}
