package lzindex

// noPosition marks an empty hash chain slot or the absence of a prior
// occurrence, standing in for the Rust source's u32::MAX sentinel.
const noPosition int32 = -1

// HashChain layers a backward-walkable chain of same-key positions on top
// of a PrefixTable, bounded to LongOffsetMax entries (spec.md §3.5).
type HashChain struct {
	table PrefixTable
	chain []int32
}

// NewHashChain builds a chain sized for an input of the given length.
func NewHashChain(inputLen int) *HashChain {
	size := inputLen
	if size > LongOffsetMax {
		size = LongOffsetMax
	}
	if size < 1 {
		size = 1
	}
	chain := make([]int32, size)
	for i := range chain {
		chain[i] = noPosition
	}
	return &HashChain{table: NewPrefixTable(inputLen), chain: chain}
}

func (h *HashChain) slot(pos int32) int32 {
	return pos % int32(len(h.chain))
}

// Insert records pos as the newest occurrence of key and returns the head
// of its candidate chain: the most recent earlier occurrence within
// LongOffsetMax, or noPosition if none exists.
func (h *HashChain) Insert(key [3]byte, pos int32) int32 {
	prev, found := h.table.Insert(key, pos)
	head := noPosition
	if found && pos-prev <= LongOffsetMax {
		head = prev
	}
	h.chain[h.slot(pos)] = head
	return head
}

// Candidates walks the chain starting at head (the value Insert just
// returned), yielding up to max positions no farther than LongOffsetMax
// behind orig.
func (h *HashChain) Candidates(head, orig int32, max int) []int32 {
	if max <= 0 {
		return nil
	}
	out := make([]int32, 0, max)
	cur := head
	for cur != noPosition && len(out) < max {
		out = append(out, cur)
		next := h.chain[h.slot(cur)]
		if next == noPosition || orig-next > LongOffsetMax {
			break
		}
		cur = next
	}
	return out
}
