package header

import (
	"encoding/binary"
	"io"
)

// ReferenceMode is the plain 4-byte little-endian decompressed-length
// header used by the original RefPack dialect.
type ReferenceMode struct{}

var _ Mode = ReferenceMode{}

func (ReferenceMode) Length(int) int { return 4 }

func (ReferenceMode) Read(r io.Reader) (Header, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, err
	}
	return Header{DecompressedLength: binary.LittleEndian.Uint32(buf[:])}, nil
}

func (ReferenceMode) Write(w io.Writer, h Header) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], h.DecompressedLength)
	_, err := w.Write(buf[:])
	return err
}
