// Package control implements the RefPack instruction set: the
// Huffman-flavored, prefix-dispatched five-shape control codec described by
// the format's wire specification.
package control

import "github.com/pkg/errors"

// Kind identifies which of the five Command shapes a value holds.
type Kind uint8

const (
	Short Kind = iota
	Medium
	Long
	Literal
	Stop
)

func (k Kind) String() string {
	switch k {
	case Short:
		return "short"
	case Medium:
		return "medium"
	case Long:
		return "long"
	case Literal:
		return "literal"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Range limits for each command shape, named the way control.rs names them.
const (
	ShortOffsetMin = 1
	ShortOffsetMax = 1023
	ShortLengthMin = 3
	ShortLengthMax = 10

	MediumOffsetMin = 1
	MediumOffsetMax = 16383
	MediumLengthMin = 4
	MediumLengthMax = 67

	LongOffsetMin = 1
	LongOffsetMax = 131072
	LongLengthMin = 5
	LongLengthMax = 1028

	// SimCity4's Long shape trades one bit of offset for three bits of length.
	SimCity4LongOffsetMin = 0
	SimCity4LongOffsetMax = 65535
	SimCity4LongLengthMin = 5
	SimCity4LongLengthMax = 2047

	LiteralMin = 4
	LiteralMax = 112
	LiteralStep = 4

	CopyLiteralMin = 0
	CopyLiteralMax = 3
)

// Command is a tagged instruction: a (copy-offset, copy-length,
// literal-length) triple whose legal ranges depend on Kind.
type Command struct {
	Kind    Kind
	Offset  int
	Length  int
	Literal int
}

// NewCopy selects the narrowest shape (Short, Medium, then Long) able to
// encode the given offset/length/literal triple. It panics on out-of-range
// arguments: callers are required to clamp candidates against
// bytesForMatch's limits before ever reaching here, so an out-of-range
// triple is a programming error, not a malformed-input condition.
func NewCopy(offset, length, literal int) Command {
	if literal > CopyLiteralMax || literal < 0 {
		panic(errors.Errorf("control: literal length must be 0..=3, got %d", literal))
	}
	if offset > LongOffsetMax || length > LongLengthMax {
		panic(errors.Errorf("control: offset/length out of range (max offset %d, max length %d; got offset=%d length=%d)", LongOffsetMax, LongLengthMax, offset, length))
	}
	switch {
	case offset > MediumOffsetMax || length > MediumLengthMax:
		if length < LongLengthMin {
			panic(errors.Errorf("control: long shape requires length >= %d, got %d", LongLengthMin, length))
		}
		return Command{Kind: Long, Offset: offset, Length: length, Literal: literal}
	case offset > ShortOffsetMax || length > ShortLengthMax:
		if length < MediumLengthMin {
			panic(errors.Errorf("control: medium shape requires length >= %d, got %d", MediumLengthMin, length))
		}
		return Command{Kind: Medium, Offset: offset, Length: length, Literal: literal}
	default:
		if length < ShortLengthMin {
			panic(errors.Errorf("control: short shape requires length >= %d, got %d", ShortLengthMin, length))
		}
		return Command{Kind: Short, Offset: offset, Length: length, Literal: literal}
	}
}

// NewSimCity4Copy is NewCopy restricted to SimCity4's tighter Long offset
// range (0..=65535 instead of 1..=131072) and wider length range
// (5..=2047 instead of 5..=1028). See SPEC_FULL.md §6 for why this
// restriction exists: the original encoder did not enforce it and could
// silently overflow the wire format.
func NewSimCity4Copy(offset, length, literal int) Command {
	if literal > CopyLiteralMax || literal < 0 {
		panic(errors.Errorf("control: literal length must be 0..=3, got %d", literal))
	}
	if offset > SimCity4LongOffsetMax || length > SimCity4LongLengthMax {
		panic(errors.Errorf("control: simcity4 offset/length out of range (max offset %d, max length %d; got offset=%d length=%d)", SimCity4LongOffsetMax, SimCity4LongLengthMax, offset, length))
	}
	switch {
	// offset==0 can only ride the Long shape: Short and Medium share a
	// "distance - 1" magic-number encoding (see shared.go's writeShort/
	// writeMedium) that has no representation for a zero offset.
	case offset == 0 || offset > MediumOffsetMax || length > MediumLengthMax:
		if length < SimCity4LongLengthMin {
			panic(errors.Errorf("control: simcity4 long shape requires length >= %d, got %d", SimCity4LongLengthMin, length))
		}
		return Command{Kind: Long, Offset: offset, Length: length, Literal: literal}
	case offset > ShortOffsetMax || length > ShortLengthMax:
		if length < MediumLengthMin {
			panic(errors.Errorf("control: medium shape requires length >= %d, got %d", MediumLengthMin, length))
		}
		return Command{Kind: Medium, Offset: offset, Length: length, Literal: literal}
	default:
		if length < ShortLengthMin {
			panic(errors.Errorf("control: short shape requires length >= %d, got %d", ShortLengthMin, length))
		}
		return Command{Kind: Short, Offset: offset, Length: length, Literal: literal}
	}
}

// NewLiteral builds a standalone Literal instruction. length must be a
// multiple of 4 in 4..=112; violating that is a programming error.
func NewLiteral(length int) Command {
	if length > LiteralMax || length < LiteralMin || length%LiteralStep != 0 {
		panic(errors.Errorf("control: literal command length must be a multiple of 4 in 4..=112, got %d", length))
	}
	return Command{Kind: Literal, Literal: length}
}

// NewStop builds the stream-terminating Stop instruction, carrying 0..=3
// trailing literal bytes.
func NewStop(literal int) Command {
	if literal > CopyLiteralMax || literal < 0 {
		panic(errors.Errorf("control: stop literal length must be 0..=3, got %d", literal))
	}
	return Command{Kind: Stop, Literal: literal}
}

// NumLiteral reports how many raw bytes trail this Command, or 0 if none.
func (c Command) NumLiteral() int {
	return c.Literal
}

// OffsetCopy reports the (offset, length) back-reference this Command
// encodes, and whether it encodes one at all (Literal and Stop do not).
func (c Command) OffsetCopy() (offset, length int, ok bool) {
	switch c.Kind {
	case Short, Medium, Long:
		return c.Offset, c.Length, true
	default:
		return 0, 0, false
	}
}
