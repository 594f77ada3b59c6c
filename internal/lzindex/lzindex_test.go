package lzindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/razzie/refpack/internal/lzindex"
)

func key(b []byte) [3]byte {
	return [3]byte{b[0], b[1], b[2]}
}

func TestPrefixTableSmallFindsPriorPosition(t *testing.T) {
	table := lzindex.NewPrefixTable(100)
	data := []byte("abcabcabc")

	_, found := table.Insert(key(data[0:]), 0)
	assert.False(t, found)

	prev, found := table.Insert(key(data[3:]), 3)
	assert.True(t, found)
	assert.EqualValues(t, 0, prev)

	prev, found = table.Insert(key(data[6:]), 6)
	assert.True(t, found)
	assert.EqualValues(t, 3, prev)
}

func TestPrefixTableLargeBacked(t *testing.T) {
	table := lzindex.NewPrefixTable(lzindex.LongOffsetMax + 1)
	data := []byte("xyzxyz")

	_, found := table.Insert(key(data[0:]), 0)
	assert.False(t, found)

	prev, found := table.Insert(key(data[3:]), 3)
	assert.True(t, found)
	assert.EqualValues(t, 0, prev)
}

func TestHashChainWalksBackward(t *testing.T) {
	data := []byte("abcXXXabcYYYabc")
	chain := lzindex.NewHashChain(len(data))

	head := chain.Insert(key(data[0:]), 0)
	assert.EqualValues(t, -1, head)

	head = chain.Insert(key(data[6:]), 6)
	assert.EqualValues(t, 0, head)

	head = chain.Insert(key(data[12:]), 12)
	assert.EqualValues(t, 6, head)

	candidates := chain.Candidates(head, 12, 10)
	assert.Equal(t, []int32{6, 0}, candidates)
}

func TestMatchLengthBasic(t *testing.T) {
	buf := []byte("the quick brown fox the quick brown dog")
	n := lzindex.MatchLength(buf, 20, 0, 40, 0)
	assert.Equal(t, len("the quick brown "), n)
}

func TestMatchLengthRespectsMaxLen(t *testing.T) {
	buf := []byte("aaaaaaaaaaaaaaaaaaaa")
	n := lzindex.MatchLength(buf, 10, 0, 5, 0)
	assert.Equal(t, 5, n)
}

func TestMatchLengthOrCreditsExtraByte(t *testing.T) {
	buf := []byte("abcdXXXXabcdYYYYabcdZZZZ")
	// source at 16 ("abcdZZZZ") matches both orMatchPos 8 and matchedPos 0
	// for 4 bytes ("abcd"); the byte after differs between orMatchPos
	// ('Y') and matchedPos ('X'), so matchedPos is credited one extra byte.
	got := lzindex.MatchLengthOr(buf, 16, 0, 8, 4, 0, 20)
	assert.Equal(t, 5, got)
}
