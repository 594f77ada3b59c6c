package decoder_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/decoder"
	"github.com/razzie/refpack/internal/header"
)

func TestDecodeOverlapCopy(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, header.ReferenceMode{}.Write(&buf, header.Header{DecompressedLength: 11}))

	mode := control.ReferenceMode{}
	require.NoError(t, control.WriteControl(mode, &buf, control.NewCopy(1, 10, 1), []byte("B")))
	require.NoError(t, control.WriteControl(mode, &buf, control.NewStop(0), nil))

	got, err := decoder.Decode(header.ReferenceMode{}, mode, &buf)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte("B"), 11), got)
}

func TestDecodeRejectsOverrun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, header.ReferenceMode{}.Write(&buf, header.Header{DecompressedLength: 2}))

	mode := control.ReferenceMode{}
	require.NoError(t, control.WriteControl(mode, &buf, control.NewLiteral(4), []byte("abcd")))
	require.NoError(t, control.WriteControl(mode, &buf, control.NewStop(0), nil))

	_, err := decoder.Decode(header.ReferenceMode{}, mode, &buf)
	require.Error(t, err)
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x10, 0x00, 0, 0, 0, 0, 0, 0, 0})
	_, err := decoder.Decode(header.MaxisMode{}, control.ReferenceMode{}, &buf)
	require.Error(t, err)
}
