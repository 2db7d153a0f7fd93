package bridge

import "github.com/katalvlaran/lvds/hashtable"

// NewHashTable creates a table with size slots.
func (r *Registry) NewHashTable(size int, opts ...hashtable.Option) (Handle, error) {
	t, err := hashtable.New[int](size, opts...)
	if err != nil {
		return 0, err
	}

	return r.register(KindHashTable, t), nil
}

// HashInsert stores key → v.
func (r *Registry) HashInsert(h Handle, key string, v int) (p hashtable.Probe, err error) {
	err = with(r, h, KindHashTable, func(t *hashtable.Table[int]) error {
		p, err = t.Insert(key, v)
		return err
	})

	return p, err
}

// HashSearch looks key up.
func (r *Registry) HashSearch(h Handle, key string) (v int, p hashtable.Probe, found bool, err error) {
	err = with(r, h, KindHashTable, func(t *hashtable.Table[int]) error {
		v, p, found = t.Search(key)
		return nil
	})

	return v, p, found, err
}

// HashRemove tombstones key.
func (r *Registry) HashRemove(h Handle, key string) (p hashtable.Probe, removed bool, err error) {
	err = with(r, h, KindHashTable, func(t *hashtable.Table[int]) error {
		p, removed = t.Remove(key)
		return nil
	})

	return p, removed, err
}

// HashSlots returns a snapshot of every slot.
func (r *Registry) HashSlots(h Handle) (slots []hashtable.Slot[int], err error) {
	err = with(r, h, KindHashTable, func(t *hashtable.Table[int]) error {
		slots = t.Slots()
		return nil
	})

	return slots, err
}
