package hashtable_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvds/hashtable"
)

func newTable(t *testing.T, size int, opts ...hashtable.Option) *hashtable.Table[int] {
	t.Helper()
	tb, err := hashtable.New[int](size, opts...)
	require.NoError(t, err)

	return tb
}

func TestNew_BadSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		_, err := hashtable.New[int](size)
		assert.ErrorIs(t, err, hashtable.ErrBadSize)
	}
}

func TestHashers(t *testing.T) {
	assert.Equal(t, uint64(294), hashtable.CharSum("abc"))
	assert.Equal(t, hashtable.CharSum("abc"), hashtable.CharSum("cab"))
	assert.Zero(t, hashtable.CharSum(""))
	// 5381*33+97
	assert.Equal(t, uint64(177670), hashtable.DJB2("a"))
	assert.Equal(t, uint64(5381), hashtable.DJB2(""))
	assert.NotEqual(t, hashtable.XXHash("abc"), hashtable.XXHash("cab"))
}

// TestTable_Collisions places anagrams, which share a CharSum, along one
// probe sequence and finds each with the count recorded at insertion.
func TestTable_Collisions(t *testing.T) {
	tb := newTable(t, 10)
	keys := []string{"abc", "bca", "cab"}
	for i, k := range keys {
		p, err := tb.Insert(k, i)
		require.NoError(t, err)
		assert.Equal(t, 4, p.Start)
		assert.Equal(t, 4+i, p.Slot)
		assert.Equal(t, i, p.Count)
	}
	require.NoError(t, hashtable.CheckTable(tb))

	for i, k := range keys {
		v, p, ok := tb.Search(k)
		require.True(t, ok, k)
		assert.Equal(t, i, v)
		assert.Equal(t, i, p.Count)
		assert.Equal(t, i, tb.Slots()[p.Slot].Probes)
	}
	assert.Equal(t, 3, tb.Len())
}

func TestTable_TombstoneKeepsProbing(t *testing.T) {
	tb := newTable(t, 10)
	for i, k := range []string{"abc", "bca", "cab"} {
		_, err := tb.Insert(k, i)
		require.NoError(t, err)
	}

	p, ok := tb.Remove("bca")
	require.True(t, ok)
	assert.Equal(t, 5, p.Slot)
	assert.Equal(t, 1, tb.Tombstones())
	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, hashtable.Deleted, tb.Slots()[5].State)
	require.NoError(t, hashtable.CheckTable(tb))

	// "cab" sits behind the tombstone
	v, p, ok := tb.Search("cab")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, p.Count)

	_, p, ok = tb.Search("bca")
	assert.False(t, ok)
	assert.Equal(t, -1, p.Slot)
	assert.Equal(t, 3, p.Count)

	// a new colliding key walks past the tombstone to the next empty slot
	p, err := tb.Insert("acb", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Slot)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, hashtable.Deleted, tb.Slots()[5].State)
	require.NoError(t, hashtable.CheckTable(tb))

	// the removed key can come back
	p, err = tb.Insert("bca", 9)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Slot)
	v, _, ok = tb.Search("bca")
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestTable_Duplicate(t *testing.T) {
	tb := newTable(t, 5)
	_, err := tb.Insert("k", 1)
	require.NoError(t, err)
	_, err = tb.Insert("k", 2)
	assert.ErrorIs(t, err, hashtable.ErrDuplicateKey)

	v, _, ok := tb.Search("k")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, tb.Len())
}

func TestTable_DuplicateBehindTombstone(t *testing.T) {
	tb := newTable(t, 10)
	_, err := tb.Insert("abc", 1)
	require.NoError(t, err)
	_, err = tb.Insert("bca", 2)
	require.NoError(t, err)
	_, ok := tb.Remove("abc")
	require.True(t, ok)

	_, err = tb.Insert("bca", 3)
	assert.ErrorIs(t, err, hashtable.ErrDuplicateKey)
}

func TestTable_Full(t *testing.T) {
	tb := newTable(t, 3)
	// CharSum mod 3: a→1, b→2, c→0
	for i, k := range []string{"a", "b", "c"} {
		p, err := tb.Insert(k, i)
		require.NoError(t, err)
		assert.Zero(t, p.Count)
	}
	_, err := tb.Insert("d", 3)
	assert.ErrorIs(t, err, hashtable.ErrTableFull)

	// a tombstone is not an insertion target
	_, ok := tb.Remove("a")
	require.True(t, ok)
	_, err = tb.Insert("d", 3)
	assert.ErrorIs(t, err, hashtable.ErrTableFull)
	assert.Equal(t, 2, tb.Len())
	require.NoError(t, hashtable.CheckTable(tb))

	// with no empty slot the search stops after size probes
	_, p, ok := tb.Search("zz")
	assert.False(t, ok)
	assert.Equal(t, 3, p.Count)

	tb.Clear()
	assert.Zero(t, tb.Len())
	assert.Zero(t, tb.Tombstones())
	assert.Equal(t, 3, tb.Size())
	_, err = tb.Insert("d", 3)
	assert.NoError(t, err)
}

func TestTable_RemoveMissing(t *testing.T) {
	tb := newTable(t, 4)
	p, ok := tb.Remove("nope")
	assert.False(t, ok)
	assert.Equal(t, -1, p.Slot)
	assert.Zero(t, tb.Tombstones())
}

func TestTable_Wraparound(t *testing.T) {
	tb := newTable(t, 4)
	// "c" is 99, start slot 3; "g" is 103, also 3
	_, err := tb.Insert("c", 1)
	require.NoError(t, err)
	p, err := tb.Insert("g", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Start)
	assert.Equal(t, 0, p.Slot)
	assert.Equal(t, 1, p.Count)
	require.NoError(t, hashtable.CheckTable(tb))
}

// TestTable_RandomAgainstMap replays random operations against a Go map for
// each hasher and checks the table after every step.
func TestTable_RandomAgainstMap(t *testing.T) {
	hashers := map[string]hashtable.Hasher{
		"charsum": hashtable.CharSum,
		"djb2":    hashtable.DJB2,
		"xxhash":  hashtable.XXHash,
	}
	for name, h := range hashers {
		t.Run(name, func(t *testing.T) {
			const size = 64
			tb := newTable(t, size, hashtable.WithHasher(h))
			want := make(map[string]int)
			r := rand.New(rand.NewSource(9))

			for i := 0; i < 400; i++ {
				k := fmt.Sprintf("k%d", r.Intn(40))
				switch r.Intn(3) {
				case 0:
					_, had := want[k]
					_, ok := tb.Remove(k)
					require.Equal(t, had, ok, "Remove(%s) step %d", k, i)
					delete(want, k)
				default:
					_, err := tb.Insert(k, i)
					if _, had := want[k]; had {
						require.ErrorIs(t, err, hashtable.ErrDuplicateKey)
					} else if err == nil {
						want[k] = i
					} else {
						require.ErrorIs(t, err, hashtable.ErrTableFull)
					}
				}
				require.NoError(t, hashtable.CheckTable(tb), "step %d", i)
				require.Equal(t, len(want), tb.Len())
				if tb.Tombstones() > size/2 {
					tb.Clear()
					clear(want)
				}
			}
			for k, v := range want {
				got, _, ok := tb.Search(k)
				require.True(t, ok, k)
				assert.Equal(t, v, got)
			}
		})
	}
}
