// Package hashtable implements a fixed-size open-addressing hash table with
// string keys, linear probing and tombstone deletion.
//
// The probe sequence for a key is hash(key) mod size, then each following
// slot modulo size. Insert takes the first Empty slot on that sequence and
// never reuses a tombstone, so a stored key never moves and the probe count
// recorded at insertion is exactly what a later Search reports. Search and
// Remove walk through tombstones and mismatched keys and stop at the first
// Empty slot, or after size probes.
//
// Because tombstones are not reclaimed, a table that has seen many removals
// can report ErrTableFull while Len() < Size(). Clear resets it. There is no
// resize.
//
// Hashers: CharSum (default, sum of code points), DJB2 and XXHash.
//
//	t, _ := hashtable.New[int](10)
//	p, _ := t.Insert("abc", 1) // p.Start == 4, p.Count == 0
//	v, p, ok := t.Search("abc")
//
// A Table is not safe for concurrent use.
package hashtable
