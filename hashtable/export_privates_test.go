package hashtable

import "fmt"

// CheckTable verifies the counters and that every live key sits on its own
// probe sequence behind only non-empty slots, at the distance it recorded.
func CheckTable[V any](t *Table[V]) error {
	size := len(t.slots)
	occupied, tombstones := 0, 0
	for idx, s := range t.slots {
		switch s.State {
		case Occupied:
			occupied++
			start := t.start(s.Key)
			dist := (idx - start + size) % size
			if dist != s.Probes {
				return fmt.Errorf("slot %d (%q): probes %d, distance from start %d", idx, s.Key, s.Probes, dist)
			}
			for i := 0; i < dist; i++ {
				if t.slots[(start+i)%size].State == Empty {
					return fmt.Errorf("slot %d (%q): empty slot %d on its probe path", idx, s.Key, (start+i)%size)
				}
			}
		case Deleted:
			tombstones++
		}
	}
	if occupied != t.occupied || tombstones != t.tombstones {
		return fmt.Errorf("counters: occupied %d/%d tombstones %d/%d", t.occupied, occupied, t.tombstones, tombstones)
	}

	return nil
}
