package hashtable

import (
	"errors"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors returned by the hash table.
var (
	// ErrBadSize is returned by New when size is not positive.
	ErrBadSize = errors.New("hashtable: size must be positive")

	// ErrTableFull is returned by Insert when no empty slot is reachable.
	ErrTableFull = errors.New("hashtable: table is full")

	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("hashtable: duplicate key")
)

// Hasher maps a key to an unsigned hash; the start slot is hash mod size.
type Hasher func(key string) uint64

// CharSum sums the code points of key. Anagrams collide, which makes probe
// sequences easy to reason about.
func CharSum(key string) uint64 {
	var sum uint64
	for _, r := range key {
		sum += uint64(r)
	}

	return sum
}

// DJB2 is Bernstein's hash: h = h*33 + c over the bytes of key, seeded 5381.
func DJB2(key string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}

	return h
}

// XXHash hashes key with xxHash64.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Options configures a Table.
type Options struct {
	Hasher Hasher
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options using CharSum.
func DefaultOptions() Options {
	return Options{Hasher: CharSum}
}

// WithHasher selects the hash function; nil keeps the current one.
func WithHasher(h Hasher) Option {
	return func(o *Options) {
		if h != nil {
			o.Hasher = h
		}
	}
}

// SlotState is the state of one table slot.
type SlotState uint8

const (
	// Empty slots have never held a key since creation or the last Clear.
	Empty SlotState = iota
	// Occupied slots hold a live key.
	Occupied
	// Deleted slots are tombstones: they end no probe and take no insert.
	Deleted
)

// String returns "empty", "occupied" or "deleted".
func (s SlotState) String() string {
	switch s {
	case Occupied:
		return "occupied"
	case Deleted:
		return "deleted"
	default:
		return "empty"
	}
}

// Slot is a snapshot of one table position. Probes is the probe count
// recorded when the key was inserted; it survives deletion.
type Slot[V any] struct {
	State  SlotState
	Key    string
	Value  V
	Probes int
}

// Probe describes one walk of the probe sequence.
//
// Start is hash(key) mod size. Slot is the index acted on, or -1 when the
// walk ended without a target. Count is the number of non-empty slots
// skipped before Slot (or before the walk stopped).
type Probe struct {
	Start int
	Slot  int
	Count int
}

// Table is a fixed-size open-addressing hash table with linear probing.
// Removed keys leave tombstones; there is no resize. The zero value is not
// usable; call New.
type Table[V any] struct {
	slots      []Slot[V]
	hash       Hasher
	occupied   int
	tombstones int
}
