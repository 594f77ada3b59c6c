package encoder

import (
	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/lzindex"
)

// maxFastCandidates bounds how many hash-chain entries Fast walks per
// position before settling for its best find so far (fast.rs: `.take(0x80)`).
const maxFastCandidates = 0x80

// EncodeFast runs the bounded hash-chain strategy: each position walks up
// to maxFastCandidates prior occurrences of its 3-byte prefix and keeps
// whichever yields the best bytes-per-output-byte ratio. Grounded on
// original_source's fast.rs.
func EncodeFast(mode control.Mode, input []byte) []control.Control {
	b := newBuilder(mode)
	chain := lzindex.NewHashChain(len(input))
	_, maxOffset, _, maxLength := mode.LongLimits()

	i := 0
	end := max3(len(input)) - 3
	for i < end {
		key := prefixKey(input[i:])
		head := chain.Insert(key, int32(i))

		capLen := maxLength
		if i+capLen > len(input) {
			capLen = len(input) - i
		}

		bestPos, bestLength, bestRatio := -1, 0, 0.0
		for _, cand := range chain.Candidates(head, int32(i), maxFastCandidates) {
			matched := int(cand)
			distance := i - matched
			if distance > maxOffset || distance < control.ShortOffsetMin {
				continue
			}
			length := lzindex.MatchLength(input, i, matched, capLen, 3)
			mc := bytesForMatch(length, distance)
			if !mc.possible || !mc.hasCost {
				continue
			}
			ratio := float64(length) / float64(mc.cost)
			if ratio > bestRatio {
				bestPos, bestLength, bestRatio = matched, length, ratio
			}
		}

		if bestPos >= 0 {
			b.pushCopy(i-bestPos, bestLength)
			for k := i + 1; k < i+bestLength && k < end; k++ {
				chain.Insert(prefixKey(input[k:]), int32(k))
			}
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
