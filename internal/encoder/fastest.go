package encoder

import (
	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/lzindex"
)

// EncodeFastest runs the single-candidate strategy: one prefix-table probe
// per position, accepting its match length with no alternative search.
// Grounded on original_source's fastest.rs.
func EncodeFastest(mode control.Mode, input []byte) []control.Control {
	b := newBuilder(mode)
	table := lzindex.NewPrefixTable(len(input))

	_, maxOffset, _, maxLength := mode.LongLimits()

	i := 0
	end := max3(len(input)) - 3
	for i < end {
		key := prefixKey(input[i:])
		prev, found := table.Insert(key, int32(i))

		var bestDistance, bestLength int
		if found {
			distance := i - int(prev)
			if distance <= maxOffset && distance >= control.ShortOffsetMin {
				capLen := maxLength
				if i+capLen > len(input) {
					capLen = len(input) - i
				}
				length := lzindex.MatchLength(input, i, int(prev), capLen, 3)
				if mc := bytesForMatch(length, distance); mc.possible && mc.hasCost {
					bestDistance, bestLength = distance, length
				}
			}
		}

		if bestLength > 0 {
			b.pushCopy(bestDistance, bestLength)
			i += bestLength
		} else {
			b.pushLiteral(input[i])
			i++
		}
	}
	for ; i < len(input); i++ {
		b.pushLiteral(input[i])
	}
	return b.finish()
}

func prefixKey(b []byte) [3]byte {
	return [3]byte{b[0], b[1], b[2]}
}

// max3 mirrors std::cmp::max(3, n) from the source, avoiding a negative
// `end` for inputs shorter than the minimum 3-byte prefix.
func max3(n int) int {
	if n < 3 {
		return 3
	}
	return n
}
