// Package rferrors defines RefPack's flat error taxonomy (spec.md §6.3,
// §7): EmptyInput, BadMagic, BadFlags, and a wrapped Io kind. It is shared
// by the header and decoder packages and the module root, and re-exported
// unwrapped at the module root so callers never import an internal path.
package rferrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when compression is invoked with a zero-length
// input; spec.md §6.3.
var ErrEmptyInput = errors.New("refpack: no input provided to compression")

// BadMagicError reports a header whose magic byte did not equal 0xFB.
type BadMagicError struct {
	Got byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("refpack: invalid magic number in header: %#02x", e.Got)
}

// NewBadMagic builds a BadMagicError for the byte actually read.
func NewBadMagic(got byte) error {
	return &BadMagicError{Got: got}
}

// BadFlagsError reports a SimEA header flags byte with unrecognized bits set.
type BadFlagsError struct {
	Got byte
}

func (e *BadFlagsError) Error() string {
	return fmt.Sprintf("refpack: unrecognized header flags: %#02x", e.Got)
}

// NewBadFlags builds a BadFlagsError for the byte actually read.
func NewBadFlags(got byte) error {
	return &BadFlagsError{Got: got}
}

// CorruptedError reports a decode-time violation of the control stream's
// contract: an out-of-range back-reference, or output that would overrun
// the header's declared decompressed length.
type CorruptedError struct {
	Reason string
}

func (e *CorruptedError) Error() string {
	return "refpack: corrupted data: " + e.Reason
}

// NewCorrupted builds a CorruptedError with the given reason.
func NewCorrupted(reason string) error {
	return &CorruptedError{Reason: reason}
}

// WrapIO wraps an underlying I/O failure with call-site context, matching
// the Io(inner) error kind.
func WrapIO(err error, context string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, context)
}
