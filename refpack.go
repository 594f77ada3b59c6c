// Package refpack compresses and decompresses the RefPack family of
// LZ77-style formats used by Origin/EA/Maxis titles from the late 1990s
// through the 2010s. See Format for the supported dialects and Strategy
// for the available compression strategies.
package refpack

import (
	"bytes"
	"io"

	"github.com/apex/log"

	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/decoder"
	"github.com/razzie/refpack/internal/encoder"
	"github.com/razzie/refpack/internal/header"
	"github.com/razzie/refpack/internal/rferrors"
)

// Strategy selects which compression algorithm Compress runs.
type Strategy = encoder.Strategy

const (
	Fastest = encoder.Fastest
	Fast    = encoder.Fast
	Optimal = encoder.Optimal
)

// Info is the result of Peek: a compressed stream's header, read without
// running the decoder.
type Info struct {
	Format              Format
	DecompressedLength  uint32
	CompressedLength    uint32
	HasCompressedLength bool
}

// Compress reads exactly length bytes from r, compresses them under format
// using strategy, and writes the compressed stream to w. The header's
// compressed-length field (for dialects that carry one) is back-patched
// after the control stream is known, by buffering the control stream in
// memory before writing anything to w — w need not support io.Seeker.
func Compress(format Format, length int, r io.Reader, w io.Writer, strategy Strategy) error {
	if length == 0 {
		return ErrEmptyInput
	}

	input := make([]byte, length)
	if _, err := io.ReadFull(r, input); err != nil {
		return rferrors.WrapIO(err, "refpack: reading compression input")
	}

	headerMode, controlMode := format.modes()
	controls := encoder.Encode(controlMode, input, strategy)

	var body bytes.Buffer
	for _, c := range controls {
		if err := control.WriteControl(controlMode, &body, c.Command, c.Bytes); err != nil {
			return rferrors.WrapIO(err, "refpack: writing control stream")
		}
	}

	log.WithFields(log.Fields{
		"format":     format,
		"strategy":   strategy,
		"input_size": length,
		"output_size": body.Len(),
	}).Debug("refpack: compressed control stream")

	h := header.Header{
		DecompressedLength:  uint32(length),
		CompressedLength:    uint32(body.Len()),
		HasCompressedLength: true,
	}
	if err := headerMode.Write(w, h); err != nil {
		return rferrors.WrapIO(err, "refpack: writing header")
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return rferrors.WrapIO(err, "refpack: writing control stream")
	}
	return nil
}

// EasyCompress is Compress wrapped around in-memory buffers.
func EasyCompress(format Format, input []byte, strategy Strategy) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}
	var out bytes.Buffer
	if err := Compress(format, len(input), bytes.NewReader(input), &out, strategy); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Decompress reads a compressed stream of format from r and writes the
// decompressed bytes to w.
func Decompress(format Format, r io.Reader, w io.Writer) error {
	headerMode, controlMode := format.modes()
	out, err := decoder.Decode(headerMode, controlMode, r)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return rferrors.WrapIO(err, "refpack: writing decompressed output")
}

// EasyDecompress is Decompress wrapped around in-memory buffers.
func EasyDecompress(format Format, input []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := Decompress(format, bytes.NewReader(input), &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Peek reads just the header of a compressed stream and reports its
// declared lengths and dialect, without running the decoder. Grounded on
// the teacher's Decompressor.GetCompressionInfo, generalized across
// RefPack's header dialects.
func Peek(format Format, r io.Reader) (Info, error) {
	headerMode, _ := format.modes()
	h, err := headerMode.Read(r)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Format:              format,
		DecompressedLength:  h.DecompressedLength,
		CompressedLength:    h.CompressedLength,
		HasCompressedLength: h.HasCompressedLength,
	}, nil
}

// MaxCompressedSize reports a safe upper bound on the compressed size of a
// decompressedSize-byte input under format, for preallocating a
// destination buffer.
func MaxCompressedSize(format Format, decompressedSize int) int {
	headerMode, _ := format.modes()
	return encoder.MaxCompressedSize(headerMode, decompressedSize)
}
