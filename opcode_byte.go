// SPDX-License-Identifier: MIT
// Copyright (c) 2026 HybridEidolon
// Source: github.com/HybridEidolon/rust-ages-prs

package prs

// opcodeByte truncates v to the single byte PRS's wire format stores it
// as — the extended-length byte of a long copy, or a negated short-copy
// distance. Callers only ever pass values whose low 8 bits are the
// serialized representation.
func opcodeByte(v int) byte {
	return byte(v & 0xff)
}
