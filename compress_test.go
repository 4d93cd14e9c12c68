package prs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripAcrossDialects(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x42}},
		{"no repetition", []byte("abcdefghijklmnopqrstuvwxyz")},
		{"highly repetitive", bytes.Repeat([]byte("AB"), 5000)},
		{"mixed", append(append([]byte("prefix-unique-"), bytes.Repeat([]byte("repeat-me "), 200)...), []byte("-suffix-unique")...)},
	}

	for _, tc := range cases {
		t.Run(tc.name+"/legacy", func(t *testing.T) {
			compressed := CompressLegacy(tc.data)
			out, err := DecompressLegacy(compressed)
			require.NoError(t, err)
			assert.Equal(t, tc.data, out)
		})

		t.Run(tc.name+"/modern", func(t *testing.T) {
			compressed := CompressModern(tc.data)
			out, err := DecompressModern(compressed)
			require.NoError(t, err)
			assert.Equal(t, tc.data, out)
		})
	}
}

func TestEmptyInputMapsToEmptyOutput(t *testing.T) {
	assert.Len(t, CompressModern(nil), 0)
	assert.Len(t, CompressLegacy(nil), 0)

	out, err := DecompressModern([]byte{})
	require.NoError(t, err)
	assert.Len(t, out, 0)

	out, err = DecompressLegacy([]byte{})
	require.NoError(t, err)
	assert.Len(t, out, 0)
}

func TestCompressIsDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte("deterministic output please"), 100)
	assert.Equal(t, CompressModern(data), CompressModern(data))
}

func TestCompressionIsEffectiveOnRepetitiveInput(t *testing.T) {
	data := bytes.Repeat([]byte("x"), 10000)
	compressed := CompressModern(data)
	assert.Less(t, len(compressed), len(data)/10)
}

func TestStreamingEquivalenceAcrossChunkBoundaries(t *testing.T) {
	data := []byte("the streaming equivalence property means output must not depend on how a caller chunks its writes across the encoder, regardless of boundary placement")

	whole := CompressModern(data)

	var buf bytes.Buffer
	enc := NewEncoder[Modern](&buf, nil)
	for i := 0; i < len(data); i++ {
		_, err := enc.Write(data[i : i+1])
		require.NoError(t, err)
	}
	require.NoError(t, enc.Close())

	assert.Equal(t, whole, buf.Bytes())
}

func TestCrossDialectDecodeIsNotGuaranteedToRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("dialect-specific framing "), 40)
	compressed := CompressModern(data)

	out, err := DecompressLegacy(compressed)
	if err == nil {
		assert.NotEqual(t, data, out)
	}
}
