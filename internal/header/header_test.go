package header_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzie/refpack/internal/header"
	"github.com/razzie/refpack/internal/rferrors"
)

func TestHeaderSymmetry(t *testing.T) {
	cases := []struct {
		name string
		mode header.Mode
		h    header.Header
	}{
		{"reference", header.ReferenceMode{}, header.Header{DecompressedLength: 12}},
		{"maxis", header.MaxisMode{}, header.Header{DecompressedLength: 4096, CompressedLength: 256, HasCompressedLength: true}},
		{"maxis2-small", header.Maxis2Mode{}, header.Header{DecompressedLength: 512}},
		{"maxis2-big", header.Maxis2Mode{}, header.Header{DecompressedLength: 0x01000000}},
		{"simea-small", header.SimEAMode{}, header.Header{DecompressedLength: 512}},
		{"simea-compressed", header.SimEAMode{}, header.Header{DecompressedLength: 512, CompressedLength: 300, HasCompressedLength: true}},
		{"simea-big", header.SimEAMode{}, header.Header{DecompressedLength: 0x01000000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tc.mode.Write(&buf, tc.h))
			assert.Equal(t, tc.mode.Length(int(tc.h.DecompressedLength)), buf.Len())

			got, err := tc.mode.Read(&buf)
			require.NoError(t, err)
			assert.Equal(t, tc.h.DecompressedLength, got.DecompressedLength)
			assert.Equal(t, tc.h.HasCompressedLength, got.HasCompressedLength)
			if tc.h.HasCompressedLength {
				assert.Equal(t, tc.h.CompressedLength, got.CompressedLength)
			}
		})
	}
}

func TestReferenceModeBadMagicNotApplicable(t *testing.T) {
	// Reference carries no magic byte at all; any 4 bytes are a valid length.
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0, 0})
	got, err := header.ReferenceMode{}.Read(&buf)
	require.NoError(t, err)
	assert.Zero(t, got.DecompressedLength)
}

func TestMaxisModeBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x10, 0x00, 0, 0, 0, 0, 0, 0, 0})
	_, err := header.MaxisMode{}.Read(&buf)
	require.Error(t, err)
	var bad *rferrors.BadMagicError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, byte(0x00), bad.Got)
}

func TestSimEAModeBadFlags(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x02, 0xFB, 0, 0, 0})
	_, err := header.SimEAMode{}.Read(&buf)
	require.Error(t, err)
	var bad *rferrors.BadFlagsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, byte(0x02), bad.Got)
}

func TestMaxis2ModeBadFlags(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x20, 0xFB, 0, 0, 0})
	_, err := header.Maxis2Mode{}.Read(&buf)
	require.Error(t, err)
	var bad *rferrors.BadFlagsError
	require.ErrorAs(t, err, &bad)
}
