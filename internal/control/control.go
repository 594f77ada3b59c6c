package control

import (
	"io"

	"github.com/pkg/errors"
)

// Control bundles a Command with its 0..=N trailing literal bytes, where N
// is the Command's literal length. Bytes are the raw output bytes that
// follow the command and are appended to the output before any
// back-reference copy the command encodes.
type Control struct {
	Command Command
	Bytes   []byte
}

// ReadControl reads one Command via mode, then reads however many literal
// bytes it declares to complete the Control.
func ReadControl(mode Mode, r io.Reader) (Control, error) {
	cmd, err := mode.ReadCommand(r)
	if err != nil {
		return Control{}, err
	}
	n := cmd.NumLiteral()
	if n == 0 {
		return Control{Command: cmd}, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Control{}, errors.Wrap(err, "control: short read of literal bytes")
	}
	return Control{Command: cmd, Bytes: buf}, nil
}

// WriteControl writes a Control's Command followed by its literal bytes.
// len(bytes) must equal c.NumLiteral(); this is an invariant enforced by
// every caller in this module's encoder, not user input, so it panics
// rather than returning an error on mismatch.
func WriteControl(mode Mode, w io.Writer, c Command, bytes []byte) error {
	if len(bytes) != c.NumLiteral() {
		panic(errors.Errorf("control: command declares %d literal bytes, got %d", c.NumLiteral(), len(bytes)))
	}
	if err := mode.WriteCommand(w, c); err != nil {
		return err
	}
	if len(bytes) == 0 {
		return nil
	}
	_, err := w.Write(bytes)
	return err
}

// Iterator walks a contiguous control stream until a Stop command is read
// (inclusive), then yields io.EOF. It never returns a Control past Stop.
type Iterator struct {
	mode Mode
	r    io.Reader
	done bool
}

// NewIterator builds an Iterator reading from r using mode.
func NewIterator(mode Mode, r io.Reader) *Iterator {
	return &Iterator{mode: mode, r: r}
}

// Next returns the next Control, or io.EOF once the stream's Stop has been
// consumed. Any other error is fatal: a short read mid-instruction is not
// tolerated (spec.md §7).
func (it *Iterator) Next() (Control, error) {
	if it.done {
		return Control{}, io.EOF
	}
	c, err := ReadControl(it.mode, it.r)
	if err != nil {
		return Control{}, err
	}
	if c.Command.Kind == Stop {
		it.done = true
	}
	return c, nil
}
