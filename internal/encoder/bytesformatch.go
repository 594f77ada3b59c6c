// Package encoder implements the three RefPack compression strategies
// (Fastest, Fast, Optimal) over the shared lzindex match-finding
// structures, all producing the same control.Control stream shape.
package encoder

import "github.com/razzie/refpack/internal/control"

// matchCost describes what bytesForMatch reports about a candidate
// (length, offset) pair: whether a command can encode it at all, and if
// so how many bytes that command would cost.
type matchCost struct {
	possible bool
	hasCost  bool
	cost     int
}

// bytesForMatch selects which copy-instruction shape a (length, offset)
// pair would use and what it costs, matching spec.md §4.4.1's table
// exactly. The Long shape's cost is always 4 bytes regardless of dialect;
// callers bound length/offset to the active mode's Long limits before
// calling this (see control.Mode.LongLimits), so the shared Reference
// limits here only gate the shape boundary, not the final range check.
func bytesForMatch(length, offset int) matchCost {
	if offset > control.LongOffsetMax {
		return matchCost{possible: false}
	}
	if length >= control.LongLengthMin {
		if length > control.MediumLengthMax || offset > control.MediumOffsetMax {
			return matchCost{possible: true, hasCost: true, cost: 4}
		}
		if length > control.ShortLengthMax || offset > control.ShortOffsetMax {
			return matchCost{possible: true, hasCost: true, cost: 3}
		}
		return matchCost{possible: true, hasCost: true, cost: 2}
	}
	switch {
	case offset <= control.ShortOffsetMax:
		return matchCost{possible: true, hasCost: true, cost: 2}
	case offset <= control.MediumOffsetMax:
		if length >= control.MediumLengthMin {
			return matchCost{possible: true, hasCost: true, cost: 3}
		}
		return matchCost{possible: true, hasCost: false}
	default:
		return matchCost{possible: true, hasCost: false}
	}
}
