// Package lzindex implements the sliding-window match-finding structures
// shared by every encoder strategy: a prefix table mapping 3-byte keys to
// their most recent position, a hash chain walking prior occurrences of a
// key backward, and a longest-common-prefix search used to measure
// candidate matches.
package lzindex

// smallTableCutoff is the input size below which the map-backed prefix
// table outperforms the flat two-level one.
const smallTableCutoff = 8192

// LongOffsetMax bounds how far back a back-reference may point, for any
// dialect; it is the hash chain's modulus and the window size.
const LongOffsetMax = 131072

// PrefixTable maps a 3-byte key to the most recent absolute position at
// which it was seen, returning the prior occupant (if any) on each insert.
type PrefixTable interface {
	Insert(key [3]byte, pos int32) (prev int32, found bool)
}

// NewPrefixTable selects the small map-backed table for inputs under 8 KiB
// and the large flat table otherwise; either is correctness-equivalent.
func NewPrefixTable(inputLen int) PrefixTable {
	if inputLen < smallTableCutoff {
		return newSmallPrefixTable()
	}
	return newLargePrefixTable()
}

type smallPrefixTable struct {
	table map[uint32]int32
}

func newSmallPrefixTable() *smallPrefixTable {
	return &smallPrefixTable{table: make(map[uint32]int32)}
}

func keyOf(key [3]byte) uint32 {
	return uint32(key[0])<<16 | uint32(key[1])<<8 | uint32(key[2])
}

func (t *smallPrefixTable) Insert(key [3]byte, pos int32) (int32, bool) {
	k := keyOf(key)
	prev, found := t.table[k]
	t.table[k] = pos
	return prev, found
}

// largeEntry is one (third-byte, position) pair bucketed by the key's
// first two bytes.
type largeEntry struct {
	third byte
	pos   int32
}

// largePrefixTable buckets on the key's first two bytes (65536 buckets),
// each holding a short list disambiguated by the third byte, trading
// memory for avoiding a full 24-bit table.
type largePrefixTable struct {
	buckets [][]largeEntry
}

func newLargePrefixTable() *largePrefixTable {
	return &largePrefixTable{buckets: make([][]largeEntry, 1<<16)}
}

func (t *largePrefixTable) Insert(key [3]byte, pos int32) (int32, bool) {
	index := int(key[0])<<8 | int(key[1])
	bucket := t.buckets[index]
	for i := range bucket {
		if bucket[i].third == key[2] {
			prev := bucket[i].pos
			bucket[i].pos = pos
			return prev, true
		}
	}
	t.buckets[index] = append(bucket, largeEntry{third: key[2], pos: pos})
	return 0, false
}
