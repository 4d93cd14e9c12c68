// SPDX-License-Identifier: MIT
// Copyright (c) 2026 HybridEidolon
// Source: github.com/HybridEidolon/rust-ages-prs

/*
Package prs implements PRS, SEGA's proprietary LZ77-family byte-stream
codec used across Dreamcast, Saturn, PSU and PSO2-era titles.

PRS comes in two incompatible dialects that differ only in the minimum
length of an extended-length long copy: Legacy (MIN_LONG_COPY_LENGTH = 1)
and Modern (MIN_LONG_COPY_LENGTH = 10). A stream produced under one
dialect will not decode correctly under the other; Dialect is a sealed
interface so Legacy and Modern are the only types that can instantiate
the generic Encoder and Decoder.

# Streaming

NewEncoder wraps any io.Writer; Close finalizes the stream and must be
called exactly once. NewDecoder wraps any io.Reader and behaves like any
other io.Reader, returning io.EOF once the stream's EOF sentinel has been
consumed:

	enc := prs.NewEncoder[prs.Modern](w, nil)
	if _, err := enc.Write(data); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	dec := prs.NewDecoder[prs.Modern](r, nil)
	out, err := io.ReadAll(dec)

# One-shot buffers

When the whole input already lives in memory, the buffer-to-buffer
entry points skip the io.Writer/io.Reader plumbing:

	compressed := prs.CompressModern(data)
	out, err := prs.DecompressModern(compressed)
*/
package prs
