package header

import (
	"io"

	"github.com/razzie/refpack/internal/rferrors"
)

// Maxis2 flags byte values observed in the wild (spec.md §3.3): little u24,
// little-restricted u24, and big u32 decompressed length. No dialect here
// carries a compressed length.
const (
	maxis2FlagLittle   = 0x10
	maxis2FlagRestrict = 0x40
	maxis2FlagBig      = 0x80
)

// Maxis2Mode implements the Sims 3-4 header: a flags byte selecting a
// 24-bit or 32-bit big-endian decompressed length, followed by the magic
// byte, followed by the length field itself.
type Maxis2Mode struct{}

var _ Mode = Maxis2Mode{}

func (Maxis2Mode) Length(decompressedSize int) int {
	if decompressedSize > 0xFFFFFF {
		return 6
	}
	return 5
}

func (Maxis2Mode) Read(r io.Reader) (Header, error) {
	flags, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	magic, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if magic != Magic {
		return Header{}, rferrors.NewBadMagic(magic)
	}
	switch flags {
	case maxis2FlagBig:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Header{}, err
		}
		return Header{DecompressedLength: be32(buf[:])}, nil
	case maxis2FlagLittle, maxis2FlagRestrict:
		n, err := readU24BE(r)
		if err != nil {
			return Header{}, err
		}
		return Header{DecompressedLength: n}, nil
	default:
		return Header{}, rferrors.NewBadFlags(flags)
	}
}

func (Maxis2Mode) Write(w io.Writer, h Header) error {
	if h.DecompressedLength > 0xFFFFFF {
		if err := writeByte(w, maxis2FlagBig); err != nil {
			return err
		}
		if err := writeByte(w, Magic); err != nil {
			return err
		}
		var buf [4]byte
		putBE32(buf[:], h.DecompressedLength)
		_, err := w.Write(buf[:])
		return err
	}
	if err := writeByte(w, maxis2FlagLittle); err != nil {
		return err
	}
	if err := writeByte(w, Magic); err != nil {
		return err
	}
	return writeU24BE(w, h.DecompressedLength)
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func putBE32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}
