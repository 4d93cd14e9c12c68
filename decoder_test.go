package prs

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoderEmptyStreamIsEOF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEncoder[Modern](&buf, nil).Close())

	dec := NewDecoder[Modern](&buf, nil)
	out, err := io.ReadAll(dec)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecoderRoundTripSmallReads(t *testing.T) {
	input := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 50)

	var compressed bytes.Buffer
	enc := NewEncoder[Modern](&compressed, nil)
	_, err := enc.Write(input)
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	dec := NewDecoder[Modern](bytes.NewReader(compressed.Bytes()), nil)

	var out bytes.Buffer
	chunk := make([]byte, 3)
	for {
		n, err := dec.Read(chunk)
		out.Write(chunk[:n])
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}

	require.Equal(t, input, out.Bytes())
}

func TestDecoderRejectsTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder[Legacy](&buf, nil)
	_, err := enc.Write([]byte("some repeated repeated repeated text"))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	truncated := buf.Bytes()[:len(buf.Bytes())-2]
	dec := NewDecoder[Legacy](bytes.NewReader(truncated), nil)
	_, err = io.ReadAll(dec)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestDecoderRejectsInvalidPointer(t *testing.T) {
	// A single command byte whose first two consumed bits are "01" (long
	// pointer), followed by a 16-bit offset encoding distance 1 — invalid
	// since no output byte has been decoded yet for it to reference.
	stream := []byte{0b00000010, 0xff, 0xff}
	dec := NewDecoder[Modern](bytes.NewReader(stream), nil)

	_, err := io.ReadAll(dec)
	var invalid *InvalidPointerError
	require.ErrorAs(t, err, &invalid)
}

func TestDecoderDialectMismatchProducesGarbageOrError(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder[Modern](&buf, nil)
	_, err := enc.Write(bytes.Repeat([]byte("mismatched dialect data "), 30))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	dec := NewDecoder[Legacy](bytes.NewReader(buf.Bytes()), nil)
	out, err := io.ReadAll(dec)
	if err == nil {
		require.NotEqual(t, bytes.Repeat([]byte("mismatched dialect data "), 30), out)
	}
}
