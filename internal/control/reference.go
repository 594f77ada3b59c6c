package control

import "io"

// ReferenceMode is the control dialect used by the vast majority of RefPack
// implementations: Origin/EA titles from the late 90s through SimCity 4's
// siblings, and both Sims generations.
//
// Long shape: 110f-nnpp ffff-ffff ffff-ffff nnnn-nnnn
//   - offset:  1..=131072 (+1 magic)
//   - length:  5..=1028   (+5 magic)
//   - literal: 0..=3
type ReferenceMode struct{}

var _ Mode = ReferenceMode{}

func (ReferenceMode) LongLimits() (minOffset, maxOffset, minLength, maxLength int) {
	return LongOffsetMin, LongOffsetMax, LongLengthMin, LongLengthMax
}

func (ReferenceMode) NewCopy(offset, length, literal int) Command {
	return NewCopy(offset, length, literal)
}

func (ReferenceMode) ReadCommand(r io.Reader) (Command, error) {
	first, err := readByte(r)
	if err != nil {
		return Command{}, err
	}
	switch {
	case first <= 0x7F:
		return readShort(first, r)
	case first <= 0xBF:
		return readMedium(first, r)
	case first <= 0xDF:
		return readReferenceLong(first, r)
	default:
		return dispatchLiteralOrStop(first), nil
	}
}

func (ReferenceMode) WriteCommand(w io.Writer, c Command) error {
	switch c.Kind {
	case Short:
		return writeShort(w, c.Offset, c.Length, c.Literal)
	case Medium:
		return writeMedium(w, c.Offset, c.Length, c.Literal)
	case Long:
		return writeReferenceLong(w, c.Offset, c.Length, c.Literal)
	case Literal:
		return writeLiteral(w, c.Literal)
	default: // Stop
		return writeStop(w, c.Literal)
	}
}

// readReferenceLong decodes 110f-nnpp ffff-ffff ffff-ffff nnnn-nnnn.
func readReferenceLong(first byte, r io.Reader) (Command, error) {
	var rest [3]byte
	if _, err := io.ReadFull(r, rest[:]); err != nil {
		return Command{}, err
	}
	byte1, byte2, byte3, byte4 := int(first), int(rest[0]), int(rest[1]), int(rest[2])

	offset := (((byte1 & 0b0001_0000) << 12) | (byte2 << 8) | byte3) + 1
	length := (((byte1 & 0b0000_1100) << 6) | byte4) + LongLengthMin
	literal := byte1 & 0b0000_0011

	return Command{Kind: Long, Offset: offset, Length: length, Literal: literal}, nil
}

func writeReferenceLong(w io.Writer, offset, length, literal int) error {
	lengthAdj := length - LongLengthMin
	offsetAdj := offset - LongOffsetMin

	first := byte(0b1100_0000) |
		byte((offsetAdj>>12)&0b0001_0000) |
		byte((lengthAdj>>6)&0b0000_1100) |
		byte(literal&0b0000_0011)
	second := byte((offsetAdj >> 8) & 0b1111_1111)
	third := byte(offsetAdj & 0b1111_1111)
	fourth := byte(lengthAdj & 0b1111_1111)

	for _, b := range [...]byte{first, second, third, fourth} {
		if err := writeByte(w, b); err != nil {
			return err
		}
	}
	return nil
}
