package encoder_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razzie/refpack/internal/control"
	"github.com/razzie/refpack/internal/encoder"
)

func decodeControls(t *testing.T, mode control.Mode, controls []control.Control) []byte {
	t.Helper()
	var buf bytes.Buffer
	for _, c := range controls {
		require.NoError(t, control.WriteControl(mode, &buf, c.Command, c.Bytes))
	}

	var out []byte
	it := control.NewIterator(mode, &buf)
	cursor := 0
	for {
		c, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, c.Bytes...)
		cursor += len(c.Bytes)
		if offset, length, ok := c.Command.OffsetCopy(); ok {
			start := cursor - offset
			for k := 0; k < length; k++ {
				out = append(out, out[start+k])
			}
			cursor += length
		}
	}
	return out
}

func TestStrategiesRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"short":      []byte("Hello World!"),
		"zeros":      bytes.Repeat([]byte{0}, 4096),
		"cycled":     cycledBytes(512),
		"repetitive": bytes.Repeat([]byte("abcabcabcabcabcabc "), 200),
		"empty-ish":  []byte("ab"),
	}

	strategies := map[string]encoder.Strategy{
		"fastest": encoder.Fastest,
		"fast":    encoder.Fast,
		"optimal": encoder.Optimal,
	}

	modes := map[string]control.Mode{
		"reference": control.ReferenceMode{},
		"simcity4":  control.SimCity4Mode{},
	}

	for inName, input := range inputs {
		for sName, strategy := range strategies {
			for mName, mode := range modes {
				t.Run(inName+"/"+sName+"/"+mName, func(t *testing.T) {
					controls := encoder.Encode(mode, input, strategy)
					got := decodeControls(t, mode, controls)
					assert.Equal(t, input, got)
				})
			}
		}
	}
}

func cycledBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 256)
	}
	return out
}
