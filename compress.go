// SPDX-License-Identifier: MIT
// Copyright (c) 2026 HybridEidolon
// Source: github.com/HybridEidolon/rust-ages-prs

package prs

import "bytes"

// CompressBuffer runs a complete buffer through a dialect's encoder in one
// call: the common case where the whole input is already in memory and
// streaming isn't needed.
func CompressBuffer[D Dialect](src []byte) []byte {
	if len(src) == 0 {
		return []byte{}
	}

	var buf bytes.Buffer
	buf.Grow(len(src))

	e := NewEncoder[D](&buf, nil)
	// A bytes.Buffer never returns an error or a short write, so neither
	// call here can fail.
	_, _ = e.Write(src)
	_ = e.Close()

	return buf.Bytes()
}

// CompressLegacy compresses src using the Legacy dialect
// (MIN_LONG_COPY_LENGTH = 1), the format used by Dreamcast- and
// Saturn-era titles.
func CompressLegacy(src []byte) []byte {
	return CompressBuffer[Legacy](src)
}

// CompressModern compresses src using the Modern dialect
// (MIN_LONG_COPY_LENGTH = 10), the format used by PSU- and PSO2-era
// titles.
func CompressModern(src []byte) []byte {
	return CompressBuffer[Modern](src)
}
