package prs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderProducesEOFSentinel(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder[Modern](&buf, nil)
	require.NoError(t, e.Close())

	// An empty stream is just the EOF sentinel: one command byte whose
	// first two consumed bits select the long-pointer form, plus two
	// zero bytes.
	out := buf.Bytes()
	require.Len(t, out, 3)
	require.Equal(t, byte(0), out[1])
	require.Equal(t, byte(0), out[2])
}

func TestEncoderWriteAcceptsFullChunk(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder[Legacy](&buf, nil)

	n, err := e.Write([]byte("hello, world"))
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.NoError(t, e.Close())
}

func TestEncoderRejectsUseAfterClose(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder[Modern](&buf, nil)
	require.NoError(t, e.Close())

	_, err := e.Write([]byte("x"))
	require.ErrorIs(t, err, ErrClosed)
}

func TestEncoderCloseIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	e := NewEncoder[Modern](&buf, nil)
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
}
