// Package decoder implements the RefPack decode virtual machine: reading
// a header, then iterating Controls into a pre-sized output buffer.
package decoder

import (
	"io"

	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/header"
	"github.com/razzie/refpack/internal/rferrors"
)

// Decode reads a header with headerMode, then a control stream with
// controlMode, and returns the decompressed bytes.
func Decode(headerMode header.Mode, controlMode control.Mode, r io.Reader) ([]byte, error) {
	h, err := headerMode.Read(r)
	if err != nil {
		return nil, rferrors.WrapIO(err, "decoder: reading header")
	}

	out := make([]byte, 0, h.DecompressedLength)
	cursor := 0

	it := control.NewIterator(controlMode, r)
	for {
		c, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rferrors.WrapIO(err, "decoder: reading control stream")
		}

		if len(c.Bytes) > 0 {
			if uint32(cursor+len(c.Bytes)) > h.DecompressedLength {
				return nil, rferrors.NewCorrupted("literal bytes overrun declared decompressed length")
			}
			out = append(out, c.Bytes...)
			cursor += len(c.Bytes)
		}

		offset, length, ok := c.Command.OffsetCopy()
		if !ok {
			continue
		}
		if offset == 0 {
			// SimCity4's Long shape allows offset=0..=65535 on the wire
			// (control.NewSimCity4Copy permits it), but a zero-distance
			// back-reference has no source byte to copy from: source
			// would equal cursor, one past the last byte written so far.
			return nil, rferrors.NewCorrupted("back-reference offset must be at least 1")
		}
		if offset > cursor {
			return nil, rferrors.NewCorrupted("back-reference resolves before start of output")
		}
		if uint32(cursor+length) > h.DecompressedLength {
			return nil, rferrors.NewCorrupted("back-reference copy overruns declared decompressed length")
		}

		source := cursor - offset
		sourceEnd := source + length
		if sourceEnd > cursor {
			// Overlapping: must proceed byte-by-byte since later bytes in
			// the run depend on ones just written (e.g. offset=1 repeats
			// a single byte length times).
			for k := 0; k < length; k++ {
				out = append(out, out[source+k])
			}
		} else {
			out = append(out, out[source:sourceEnd]...)
		}
		cursor += length
	}

	return out, nil
}
