package refpack_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzie/refpack"
)

func TestRoundTripEveryFormatAndStrategy(t *testing.T) {
	formats := []refpack.Format{refpack.Reference, refpack.TheSims12, refpack.SimCity4, refpack.TheSims34}
	strategies := []refpack.Strategy{refpack.Fastest, refpack.Fast, refpack.Optimal}

	inputs := [][]byte{
		[]byte("Hello World!"),
		bytes.Repeat([]byte{0}, 4096),
		cycled(512),
	}

	for _, format := range formats {
		for _, strategy := range strategies {
			for _, input := range inputs {
				t.Run(format.String(), func(t *testing.T) {
					compressed, err := refpack.EasyCompress(format, input, strategy)
					require.NoError(t, err)

					got, err := refpack.EasyDecompress(format, compressed)
					require.NoError(t, err)
					assert.Equal(t, input, got)
				})
			}
		}
	}
}

func TestEasyCompressRejectsEmptyInput(t *testing.T) {
	_, err := refpack.EasyCompress(refpack.Reference, nil, refpack.Fastest)
	assert.ErrorIs(t, err, refpack.ErrEmptyInput)
}

func TestPeekReportsHeader(t *testing.T) {
	input := []byte("Hello World!")
	compressed, err := refpack.EasyCompress(refpack.Reference, input, refpack.Fastest)
	require.NoError(t, err)

	info, err := refpack.Peek(refpack.Reference, bytes.NewReader(compressed))
	require.NoError(t, err)
	assert.EqualValues(t, len(input), info.DecompressedLength)
}

func TestDecompressRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x10, 0x00, 0, 0, 0, 0, 0, 0, 0})

	_, err := refpack.EasyDecompress(refpack.TheSims12, buf.Bytes())
	require.Error(t, err)
	var bad *refpack.BadMagicError
	assert.ErrorAs(t, err, &bad)
}

func cycled(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 256)
	}
	return out
}
