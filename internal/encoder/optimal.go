package encoder

import (
	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/lzindex"
)

// maxOptimalCandidates bounds how many hash-chain entries each position
// considers when building the DP table. The source's optimal strategy
// ranks candidates through a multi-level chain with "bad position" and
// "skip length" metadata (see SPEC_FULL.md §6); this instead walks a
// single ordinary hash chain but considers many more candidates per
// position than Fast does, and chooses globally via dynamic programming
// rather than greedily.
const maxOptimalCandidates = 256

type optimalChoice struct {
	length    int
	offset    int
	isLiteral bool
}

// EncodeOptimal runs a shortest-path dynamic-programming parse: for every
// position it considers every literal-byte step and every hash-chain
// match candidate, and picks whichever sequence of instructions has the
// lowest total cost across the whole input. The cost counts each literal
// byte as one byte and each copy as its instruction size; the Literal
// instruction bytes that carry runs of four or more literals are not
// counted, and each candidate is tried only at its full match length.
func EncodeOptimal(mode control.Mode, input []byte) []control.Control {
	b := newBuilder(mode)
	n := len(input)
	if n < control.ShortLengthMin {
		for _, c := range input {
			b.pushLiteral(c)
		}
		return b.finish()
	}

	chain := lzindex.NewHashChain(n)
	_, maxOffset, _, maxLength := mode.LongLimits()
	end := max3(n) - 3

	candidatesAt := make([][]int32, end)
	for i := 0; i < end; i++ {
		head := chain.Insert(prefixKey(input[i:]), int32(i))
		candidatesAt[i] = chain.Candidates(head, int32(i), maxOptimalCandidates)
	}

	// dp[i] is the minimum cost, under the model above, for input[i:];
	// pick[i] is the instruction achieving it.
	dp := make([]int, n+1)
	pick := make([]optimalChoice, n)

	for i := n - 1; i >= 0; i-- {
		best := 1 + dp[i+1]
		choice := optimalChoice{length: 1, isLiteral: true}

		if i < end {
			maxLen := maxLength
			if i+maxLen > n {
				maxLen = n - i
			}
			bestCandPos, bestCandLen := -1, 0
			for _, cand := range candidatesAt[i] {
				matched := int(cand)
				distance := i - matched
				if distance > maxOffset || distance < control.ShortOffsetMin {
					continue
				}
				// Candidates arrive nearest-first off the hash chain. Once
				// one is known, rank the next against it: if they tie up
				// to bestCandLen but diverge right after, MatchLengthOr
				// credits the new one an extra byte so it takes over as
				// the best candidate.
				var length int
				if bestCandPos < 0 {
					length = lzindex.MatchLength(input, i, matched, maxLen, 3)
				} else {
					length = lzindex.MatchLengthOr(input, i, matched, bestCandPos, bestCandLen, 3, maxLen)
				}
				if length > bestCandLen {
					bestCandPos, bestCandLen = matched, length
				}
				// The credited byte only ranks candidates; it does not
				// match the input, so drop it before pricing a copy.
				if length > maxLen || input[i+length-1] != input[matched+length-1] {
					length--
				}
				mc := bytesForMatch(length, distance)
				if !mc.possible || !mc.hasCost {
					continue
				}
				if cost := mc.cost + dp[i+length]; cost < best {
					best = cost
					choice = optimalChoice{length: length, offset: distance}
				}
			}
		}

		dp[i] = best
		pick[i] = choice
	}

	for i := 0; i < n; {
		c := pick[i]
		if c.isLiteral {
			b.pushLiteral(input[i])
			i++
			continue
		}
		b.pushCopy(c.offset, c.length)
		i += c.length
	}
	return b.finish()
}
