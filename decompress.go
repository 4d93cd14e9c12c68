// SPDX-License-Identifier: MIT
// Copyright (c) 2026 HybridEidolon
// Source: github.com/HybridEidolon/rust-ages-prs

package prs

import (
	"bytes"
	"io"
)

// DecompressBuffer runs a complete PRS stream through a dialect's decoder
// in one call, returning the reconstructed bytes. It fails with whatever
// error the streaming Decoder would have returned — ErrUnexpectedEOF on a
// truncated stream, or *InvalidPointerError on a corrupt back-reference.
// io.ReadAll treats the decoder's own io.EOF as the normal end of stream,
// not a failure.
func DecompressBuffer[D Dialect](src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	d := NewDecoder[D](bytes.NewReader(src), nil)
	return io.ReadAll(d)
}

// DecompressLegacy decompresses a Legacy-dialect PRS stream
// (MIN_LONG_COPY_LENGTH = 1).
func DecompressLegacy(src []byte) ([]byte, error) {
	return DecompressBuffer[Legacy](src)
}

// DecompressModern decompresses a Modern-dialect PRS stream
// (MIN_LONG_COPY_LENGTH = 10).
func DecompressModern(src []byte) ([]byte, error) {
	return DecompressBuffer[Modern](src)
}
