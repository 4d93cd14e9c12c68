// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/HybridEidolon/rust-ages-prs

package prs

// EncoderOptions configures a streaming Encoder.
type EncoderOptions struct {
	// BufferCapacityHint preallocates the sink's output buffer.
	BufferCapacityHint int

	// Effort trades encode time for compression ratio. Zero means
	// EffortDefault.
	Effort Effort
}

// DefaultEncoderOptions returns options with no capacity hint and
// EffortDefault.
func DefaultEncoderOptions() *EncoderOptions {
	return &EncoderOptions{Effort: EffortDefault}
}

// DecoderOptions configures a streaming Decoder.
type DecoderOptions struct {
	// WindowCapacityHint preallocates the decoder's sliding output window.
	// The window must retain at least the last 8,191 bytes produced
	// regardless of this hint; it only affects the initial allocation.
	WindowCapacityHint int
}

// DefaultDecoderOptions returns options with no capacity hint.
func DefaultDecoderOptions() *DecoderOptions {
	return &DecoderOptions{}
}
