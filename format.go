package refpack

import (
	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/header"
)

// Format names a concrete (HeaderMode, ControlMode) pairing. Formats are
// chosen once at the compress/decompress call site, never per-instruction.
type Format int

const (
	// Reference is the plain dialect used by most late-90s Origin/EA
	// titles: a 4-byte LE header and the Reference control codec.
	Reference Format = iota
	// TheSims12 is used by The Sims, The Sims Online, and The Sims 2: the
	// 9-byte Maxis header with the Reference control codec.
	TheSims12
	// SimCity4 is used by SimCity 4 and its siblings: the 9-byte Maxis
	// header with the SimCity4 control codec (tighter offset, wider length).
	SimCity4
	// TheSims34 is used by The Sims 3 and The Sims 4: the 5/6-byte Maxis2
	// header with the Reference control codec.
	TheSims34
)

func (f Format) String() string {
	switch f {
	case Reference:
		return "Reference"
	case TheSims12:
		return "TheSims12"
	case SimCity4:
		return "SimCity4"
	case TheSims34:
		return "TheSims34"
	default:
		return "unknown"
	}
}

func (f Format) modes() (header.Mode, control.Mode) {
	switch f {
	case TheSims12:
		return header.MaxisMode{}, control.ReferenceMode{}
	case SimCity4:
		return header.MaxisMode{}, control.SimCity4Mode{}
	case TheSims34:
		return header.Maxis2Mode{}, control.ReferenceMode{}
	default:
		return header.ReferenceMode{}, control.ReferenceMode{}
	}
}
