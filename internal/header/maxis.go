package header

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/razzie/refpack/internal/rferrors"
)

// maxisFlag is the SimCity 4 / Sims 1-2 header's flags byte. Only the
// small 24-bit-length form (0x10) is documented for this dialect;
// spec.md §9 notes the source's Maxis reader/writer was a stub and defines
// this dialect by analogy to SimEA plus a trailing 32-bit compressed
// length.
const maxisFlag = 0x10

// MaxisMode implements the 9-byte Maxis header: flags(1) + magic(1) +
// decompressed-length u24 BE(3) + compressed-length u32 BE(4).
type MaxisMode struct{}

var _ Mode = MaxisMode{}

func (MaxisMode) Length(int) int { return 9 }

func (MaxisMode) Read(r io.Reader) (Header, error) {
	flags, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if flags != maxisFlag {
		return Header{}, errors.Errorf("header: unexpected maxis flags byte %#02x", flags)
	}
	magic, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if magic != Magic {
		return Header{}, rferrors.NewBadMagic(magic)
	}
	decompressed, err := readU24BE(r)
	if err != nil {
		return Header{}, err
	}
	var compBuf [4]byte
	if _, err := io.ReadFull(r, compBuf[:]); err != nil {
		return Header{}, err
	}
	return Header{
		DecompressedLength:  decompressed,
		CompressedLength:    binary.BigEndian.Uint32(compBuf[:]),
		HasCompressedLength: true,
	}, nil
}

func (MaxisMode) Write(w io.Writer, h Header) error {
	if err := writeByte(w, maxisFlag); err != nil {
		return err
	}
	if err := writeByte(w, Magic); err != nil {
		return err
	}
	if err := writeU24BE(w, h.DecompressedLength); err != nil {
		return err
	}
	var compBuf [4]byte
	binary.BigEndian.PutUint32(compBuf[:], h.CompressedLength)
	_, err := w.Write(compBuf[:])
	return err
}
