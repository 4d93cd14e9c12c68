// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/HybridEidolon/rust-ages-prs

package prs

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for decoding and encoding. Use the stdlib errors.Is
// against these; IoError-class failures from a downstream/upstream are
// wrapped with github.com/pkg/errors so callers keep that ability while
// call sites still get an annotated message.
var (
	// ErrUnexpectedEOF is returned when the decoder runs out of input
	// mid-token: a command bit, a literal payload byte, a pointer's offset
	// bytes, or the extended-length byte was requested but the upstream
	// reader had nothing left to give.
	ErrUnexpectedEOF = pkgerrors.New("prs: unexpected end of input")

	// ErrWriteZero is returned when the encoder's downstream writer
	// reports zero bytes written without an error. Fatal: the stream is
	// left unrecoverable.
	ErrWriteZero = pkgerrors.New("prs: write zero")

	// ErrClosed is returned by Encoder.Write after Close has run or after
	// an earlier write failure left the stream unusable, and by
	// Encoder.Close when an earlier Write failed. The Decoder never
	// returns it.
	ErrClosed = pkgerrors.New("prs: already closed")
)

// InvalidPointerError reports a pointer command whose backward distance
// would read before the start of the bytes produced so far: distance == 0,
// or distance greater than the number of bytes decoded up to that point.
// Fatal; the decoder halts and does not attempt to resynchronize (the
// format has no resync points).
type InvalidPointerError struct {
	Distance   int
	Length     int
	CurrentLen int
}

func (e *InvalidPointerError) Error() string {
	return fmt.Sprintf("prs: invalid pointer: %d bytes %d away, %d available", e.Length, e.Distance, e.CurrentLen)
}

// wrapIO annotates a downstream/upstream I/O failure with call-site context
// while keeping it unwrappable to the original error via errors.Is/As.
func wrapIO(err error, msg string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, msg)
}
