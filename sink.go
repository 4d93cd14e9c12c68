// SPDX-License-Identifier: MIT
// Copyright (c) 2026 HybridEidolon
// Source: github.com/HybridEidolon/rust-ages-prs

package prs

// sink is C2: it translates a stream of LZ77 tokens into the PRS byte
// layout. Command bits are packed LSB-first into one "in-flight" command
// byte at cmdIndex; payload bytes (literals, pointer offsets, the long-long
// extended-length byte) are appended directly to out between bit
// emissions. They always land after the command bit(s) that selected them,
// so a reader that pulls one command byte, consumes its bits in emission
// order, and reads payloads between bit consumptions reassembles the token
// stream correctly.
//
// Invariant: after every consume, out ends at a command-byte boundary, or
// holds a partially filled command byte at cmdIndex whose remaining bits
// are still zero.
type sink[D Dialect] struct {
	out        []byte
	cmdIndex   int
	cmdBitsRem uint8 // 0..=8; 0 means the next writeBit must allocate a fresh command byte
}

func newSink[D Dialect](capacityHint int) *sink[D] {
	return &sink[D]{out: make([]byte, 0, capacityHint)}
}

// writeBit appends one command bit, allocating a new command byte at the
// tail of out if the current one is full.
func (s *sink[D]) writeBit(bit bool) {
	if s.cmdBitsRem == 0 {
		s.cmdIndex = len(s.out)
		s.cmdBitsRem = 8
		s.out = append(s.out, 0)
	}

	if bit {
		s.out[s.cmdIndex] |= 1 << (8 - s.cmdBitsRem)
	}

	s.cmdBitsRem--
}

// consume encodes one token (literal or pointer) into out.
func (s *sink[D]) consume(tok token) {
	switch tok.kind {
	case tokenLiteral:
		s.writeBit(true)
		s.out = append(s.out, tok.literal)

	case tokenPointer:
		s.consumePointer(tok.length, tok.backwardDistance)
	}
}

// consumePointer encodes a back-reference. Preconditions are enforced by
// panicking: a pointer violating them indicates a broken match-finder, not
// a user error (§7 of the codec's design).
func (s *sink[D]) consumePointer(length, backwardDistance int) {
	d := dialectOf[D]()

	if length < 2 {
		panic("prs: copy length too small (< 2)")
	}
	if length > d.maxCopyLength() {
		panic("prs: copy length too large")
	}
	if backwardDistance >= 8192 {
		panic("prs: copy distance too far (>8191)")
	}

	if backwardDistance < 256 && length <= 5 {
		s.writeShortPointer(length, backwardDistance)
		return
	}

	s.writeLongPointer(d, length, backwardDistance)
}

// writeShortPointer emits the 2-bit "00" prefix, two length bits (size =
// length-2, high bit first), and one negated-distance byte.
func (s *sink[D]) writeShortPointer(length, backwardDistance int) {
	s.writeBit(false)
	s.writeBit(false)

	size := length - 2
	s.writeBit(size&0b10 != 0)
	s.writeBit(size&0b01 != 0)

	s.out = append(s.out, opcodeByte(-backwardDistance))
}

// writeLongPointer emits the 2-bit "01" prefix, a little-endian signed
// 16-bit offset (distance negated and shifted, low 3 bits carrying a short
// length when it fits), and — when the length doesn't fit those 3 bits —
// one extended-length byte.
func (s *sink[D]) writeLongPointer(d Dialect, length, backwardDistance int) {
	s.writeBit(false)
	s.writeBit(true)

	offset := int32(-backwardDistance) << 3
	if length-2 < 8 {
		offset |= int32(length - 2)
	}

	s.out = append(s.out, opcodeByte(int(offset)), opcodeByte(int(offset>>8)))

	if length-2 >= 8 {
		s.out = append(s.out, opcodeByte(length-d.minLongCopyLength()))
	}
}

// finish emits the EOF sentinel (long-pointer prefix with a zero 16-bit
// offset) and returns the finished buffer. Any partially filled command
// byte already in out absorbs the two prefix bits in its next free
// positions; the two trailing zero bytes are unconditionally appended.
func (s *sink[D]) finish() []byte {
	s.writeBit(false)
	s.writeBit(true)
	s.out = append(s.out, 0, 0)

	return s.out
}
