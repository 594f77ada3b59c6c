package encoder

import "github.com/razzie/refpack/internal/header"

// MaxCompressedSize reports a safe upper bound on the compressed size of an
// input of decompressedSize bytes, for preallocating a destination buffer.
// RefPack has no stored/verbatim fallback block in its wire format (unlike
// the teacher's doboz, which falls back to a literal copy when compression
// would overflow the destination) — every header dialect is just a length
// field, so the worst case is the largest header plus one Literal
// instruction byte per 112-byte chunk plus the raw bytes themselves.
func MaxCompressedSize(headerMode header.Mode, decompressedSize int) int {
	literalInstructionOverhead := (decompressedSize/112 + 1) + 1 // +1 for the trailing Stop byte
	return headerMode.Length(decompressedSize) + decompressedSize + literalInstructionOverhead
}
