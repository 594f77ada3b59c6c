package encoder

import "github.com/razzie/refpack/internal/control"

// Strategy selects which of the three compression algorithms Encode runs.
type Strategy int

const (
	// Fastest runs a single prefix-table probe per position: lowest
	// compression ratio, lowest compression time.
	Fastest Strategy = iota
	// Fast walks a bounded hash chain per position, keeping whichever
	// candidate yields the best bytes-per-output-byte ratio.
	Fast
	// Optimal runs a dynamic-programming parse over a wider hash-chain
	// candidate set, minimizing an estimate of total encoded size.
	Optimal
)

// Encode compresses input into a Control stream using mode's instruction
// dialect and the given Strategy.
func Encode(mode control.Mode, input []byte, strategy Strategy) []control.Control {
	switch strategy {
	case Fast:
		return EncodeFast(mode, input)
	case Optimal:
		return EncodeOptimal(mode, input)
	default:
		return EncodeFastest(mode, input)
	}
}
