package header

import (
	"io"

	"github.com/razzie/refpack/internal/rferrors"
)

// SimEA flags form a structured bitfield (spec.md §3.3): bit 7 selects a
// 32-bit big-endian decompressed length over the default 24-bit one, bit 6
// marks the length as "restricted" (accepted on read but not recorded in
// Header, and never set on write; it does not change the wire layout
// here), and bit 0 marks a trailing 32-bit
// big-endian compressed length. Any other bit set is rejected.
const (
	simEAFlagBigDecompressed   = 0x80
	simEAFlagRestricted        = 0x40
	simEAFlagCompressedPresent = 0x01
	simEAFlagKnownMask         = simEAFlagBigDecompressed | simEAFlagRestricted | simEAFlagCompressedPresent
)

// SimEAMode implements the SimEA header.
type SimEAMode struct{}

var _ Mode = SimEAMode{}

func (SimEAMode) Length(decompressedSize int) int {
	n := 2
	if decompressedSize > 0xFFFFFF {
		n += 4
	} else {
		n += 3
	}
	return n
}

func (SimEAMode) Read(r io.Reader) (Header, error) {
	flags, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if flags&^byte(simEAFlagKnownMask) != 0 {
		return Header{}, rferrors.NewBadFlags(flags)
	}
	magic, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if magic != Magic {
		return Header{}, rferrors.NewBadMagic(magic)
	}
	var decompressed uint32
	if flags&simEAFlagBigDecompressed != 0 {
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Header{}, err
		}
		decompressed = be32(buf[:])
	} else {
		decompressed, err = readU24BE(r)
		if err != nil {
			return Header{}, err
		}
	}
	h := Header{DecompressedLength: decompressed}
	if flags&simEAFlagCompressedPresent != 0 {
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return Header{}, err
		}
		h.CompressedLength = be32(buf[:])
		h.HasCompressedLength = true
	}
	return h, nil
}

func (SimEAMode) Write(w io.Writer, h Header) error {
	var flags byte
	big := h.DecompressedLength > 0xFFFFFF
	if big {
		flags |= simEAFlagBigDecompressed
	}
	if h.HasCompressedLength {
		flags |= simEAFlagCompressedPresent
	}
	if err := writeByte(w, flags); err != nil {
		return err
	}
	if err := writeByte(w, Magic); err != nil {
		return err
	}
	if big {
		var buf [4]byte
		putBE32(buf[:], h.DecompressedLength)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	} else if err := writeU24BE(w, h.DecompressedLength); err != nil {
		return err
	}
	if h.HasCompressedLength {
		var buf [4]byte
		putBE32(buf[:], h.CompressedLength)
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}
