package encoder

import "github.com/razzie/refpack/internal/control"

// builder accumulates literal bytes between matches and emits the
// Control stream, handling the literal-block split described in
// spec.md §4.4.3: a pending literal run longer than 3 bytes when a copy
// or stop is about to be written must be split so the standalone Literal
// instruction only ever carries a multiple of 4 bytes, with the
// remainder (0..=3 bytes) riding along on the next command.
type builder struct {
	mode    control.Mode
	out     []control.Control
	literal []byte
}

func newBuilder(mode control.Mode) *builder {
	return &builder{mode: mode}
}

// pushLiteral appends one raw byte to the pending literal run, flushing a
// standalone Literal instruction once it reaches the format's cap.
func (b *builder) pushLiteral(c byte) {
	b.literal = append(b.literal, c)
	if len(b.literal) >= control.LiteralMax {
		b.out = append(b.out, control.Control{Command: control.NewLiteral(len(b.literal)), Bytes: append([]byte(nil), b.literal...)})
		b.literal = b.literal[:0]
	}
}

// pushCopy closes out the pending literal run against a back-reference
// command and clears it.
func (b *builder) pushCopy(offset, length int) {
	main, rest := splitLiteral(b.literal)
	if len(main) > 0 {
		b.out = append(b.out, control.Control{Command: control.NewLiteral(len(main)), Bytes: append([]byte(nil), main...)})
	}
	cmd := b.mode.NewCopy(offset, length, len(rest))
	b.out = append(b.out, control.Control{Command: cmd, Bytes: append([]byte(nil), rest...)})
	b.literal = b.literal[:0]
}

// finish closes out the pending literal run against the terminating Stop
// instruction and returns the completed Control stream.
func (b *builder) finish() []control.Control {
	main, rest := splitLiteral(b.literal)
	if len(main) > 0 {
		b.out = append(b.out, control.Control{Command: control.NewLiteral(len(main)), Bytes: append([]byte(nil), main...)})
	}
	b.out = append(b.out, control.Control{Command: control.NewStop(len(rest)), Bytes: append([]byte(nil), rest...)})
	return b.out
}

// splitLiteral divides a pending literal run into a multiple-of-4 main
// part (emitted as a Literal instruction, only when non-empty) and a
// 0..=3-byte remainder that rides on the following command.
func splitLiteral(literal []byte) (main, rest []byte) {
	if len(literal) <= control.CopyLiteralMax {
		return nil, literal
	}
	split := len(literal) - len(literal)%4
	return literal[:split], literal[split:]
}
