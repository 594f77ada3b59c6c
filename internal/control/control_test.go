package control_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzie/refpack/internal/control"
)

func roundTrip(t *testing.T, mode control.Mode, c control.Command) control.Command {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, mode.WriteCommand(&buf, c))
	got, err := mode.ReadCommand(&buf)
	require.NoError(t, err)
	return got
}

func TestCommandSymmetryReference(t *testing.T) {
	mode := control.ReferenceMode{}

	for offset := control.ShortOffsetMin; offset <= control.ShortOffsetMax; offset += 97 {
		for length := control.ShortLengthMin; length <= control.ShortLengthMax; length++ {
			for literal := 0; literal <= control.CopyLiteralMax; literal++ {
				c := control.NewCopy(offset, length, literal)
				got := roundTrip(t, mode, c)
				assert.Equal(t, c, got)
			}
		}
	}

	c := control.NewCopy(control.MediumOffsetMax, control.MediumLengthMax, 2)
	assert.Equal(t, c, roundTrip(t, mode, c))

	c = control.NewCopy(control.LongOffsetMax, control.LongLengthMax, 3)
	assert.Equal(t, c, roundTrip(t, mode, c))

	for lit := control.LiteralMin; lit <= control.LiteralMax; lit += control.LiteralStep {
		c := control.NewLiteral(lit)
		assert.Equal(t, c, roundTrip(t, mode, c))
	}

	for lit := 0; lit <= control.CopyLiteralMax; lit++ {
		c := control.NewStop(lit)
		assert.Equal(t, c, roundTrip(t, mode, c))
	}
}

func TestCommandSymmetrySimCity4Long(t *testing.T) {
	mode := control.SimCity4Mode{}
	c := control.NewSimCity4Copy(control.SimCity4LongOffsetMax, control.SimCity4LongLengthMax, 1)
	assert.Equal(t, c, roundTrip(t, mode, c))

	c = control.NewSimCity4Copy(0, control.SimCity4LongLengthMin, 0)
	assert.Equal(t, c, roundTrip(t, mode, c))
}

func TestDispatchBoundaries(t *testing.T) {
	mode := control.ReferenceMode{}

	cases := []struct {
		name string
		byte byte
		kind control.Kind
	}{
		{"last short", 0x7F, control.Short},
		{"first medium", 0x80, control.Medium},
		{"last medium", 0xBF, control.Medium},
		{"first long", 0xC0, control.Long},
		{"last long", 0xDF, control.Long},
		{"first literal", 0xE0, control.Literal},
		{"last literal", 0xFB, control.Literal},
		{"first stop", 0xFC, control.Stop},
		{"last stop", 0xFF, control.Stop},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rest []byte
			switch {
			case tc.byte <= 0x7F:
				rest = []byte{0}
			case tc.byte <= 0xBF:
				rest = []byte{0, 0}
			case tc.byte <= 0xDF:
				rest = []byte{0, 0, 0}
			}
			buf := bytes.NewBuffer(append([]byte{tc.byte}, rest...))
			c, err := mode.ReadCommand(buf)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, c.Kind)
		})
	}
}

func TestNewCopyPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { control.NewCopy(control.LongOffsetMax+1, 5, 0) })
	assert.Panics(t, func() { control.NewCopy(5, control.LongLengthMax+1, 0) })
	assert.Panics(t, func() { control.NewCopy(5, 5, 4) })
}

func TestNewLiteralPanicsOnBadLength(t *testing.T) {
	assert.Panics(t, func() { control.NewLiteral(5) })
	assert.Panics(t, func() { control.NewLiteral(116) })
}

func TestIteratorStopsAfterStop(t *testing.T) {
	var buf bytes.Buffer
	mode := control.ReferenceMode{}
	require.NoError(t, control.WriteControl(mode, &buf, control.NewLiteral(4), []byte("abcd")))
	require.NoError(t, control.WriteControl(mode, &buf, control.NewStop(2), []byte("xy")))

	it := control.NewIterator(mode, &buf)

	c1, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, control.Literal, c1.Command.Kind)
	assert.Equal(t, []byte("abcd"), c1.Bytes)

	c2, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, control.Stop, c2.Command.Kind)
	assert.Equal(t, []byte("xy"), c2.Bytes)

	_, err = it.Next()
	assert.ErrorIs(t, err, io.EOF)
}
