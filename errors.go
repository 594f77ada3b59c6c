package refpack

import "github.com/razzie/refpack/internal/rferrors"

// ErrEmptyInput is returned by Compress/EasyCompress when called with a
// zero-length input.
var ErrEmptyInput = rferrors.ErrEmptyInput

// BadMagicError reports a header whose magic byte was not 0xFB.
type BadMagicError = rferrors.BadMagicError

// BadFlagsError reports a SimEA/Maxis2 header flags byte with unrecognized
// bits set.
type BadFlagsError = rferrors.BadFlagsError

// CorruptedError reports a decode-time violation of the control stream's
// contract: an out-of-range back-reference or an output overrun.
type CorruptedError = rferrors.CorruptedError
