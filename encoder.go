package prs

import (
	"io"

	"github.com/HybridEidolon/rust-ages-prs/internal/lz77"
)

// windowSize is the PRS sliding window: backward distances are 1..=8191.
const windowSize = 8191

// LegacyEncoder and ModernEncoder name the two concrete streaming encoders
// a caller is most likely to reach for, mirroring the original Rust
// crate's ModernPrsEncoder/LegacyPrsEncoder type aliases.
type (
	LegacyEncoder = Encoder[Legacy]
	ModernEncoder = Encoder[Modern]
)

// Encoder is C3: it wraps a sliding-window LZ77 match-finder and a C2
// command sink, and offers a streaming io.Writer over a downstream byte
// sink. It guarantees a well-formed EOF marker once Close succeeds.
//
// An Encoder is not safe for concurrent use; each instance owns its output
// buffer and its downstream writer exclusively.
type Encoder[D Dialect] struct {
	w       io.Writer
	matcher *lz77.Encoder
	sink    *sink[D]
	adapter lz77SinkAdapter[D]

	closed   bool
	unusable bool // set once a finalization failure surrenders the stream
}

// NewEncoder constructs a streaming encoder over w. opts may be nil.
func NewEncoder[D Dialect](w io.Writer, opts *EncoderOptions) *Encoder[D] {
	if opts == nil {
		opts = DefaultEncoderOptions()
	}

	d := dialectOf[D]()
	maxLength := d.maxCopyLength()

	effort := opts.Effort
	if effort == 0 {
		effort = EffortDefault
	}

	e := &Encoder[D]{
		w:       w,
		matcher: lz77.NewEncoderWithEffort(windowSize, maxLength, effort.maxChainProbes()),
		sink:    newSink[D](opts.BufferCapacityHint),
	}
	e.adapter = lz77SinkAdapter[D]{sink: e.sink}

	return e
}

// Write feeds chunk to the match-finder and attempts to flush every
// already-finalized command byte to the downstream writer. It always
// accepts the entire chunk; a short accept never happens.
func (e *Encoder[D]) Write(chunk []byte) (int, error) {
	if e.unusable {
		return 0, ErrClosed
	}
	if e.closed {
		return 0, ErrClosed
	}

	e.matcher.Encode(chunk, e.adapter)

	if err := e.flush(); err != nil {
		e.unusable = true
		return 0, err
	}

	return len(chunk), nil
}

// flush writes out[:cmdIndex] downstream — the bytes that belong to
// already-finalized command bytes — and drains them from the sink's
// buffer. The in-flight command byte (at cmdIndex) and anything after it
// is retained, since later bit emissions may still mutate it.
func (e *Encoder[D]) flush() error {
	n := e.sink.cmdIndex
	if n == 0 {
		return nil
	}

	if err := writeAllTolerant(e.w, e.sink.out[:n]); err != nil {
		return err
	}

	e.sink.out = append(e.sink.out[:0:0], e.sink.out[n:]...)
	e.sink.cmdIndex -= n

	return nil
}

// Close finalizes the stream: flushes any saturated command byte, asks
// the match-finder to emit its remaining buffered tokens, appends the EOF
// sentinel, and writes everything still held in the sink to the
// downstream writer. After a finalization failure the stream is
// unrecoverable — the encoder must not be written to or closed again.
func (e *Encoder[D]) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.unusable {
		return ErrClosed
	}

	if err := e.flush(); err != nil {
		e.unusable = true
		return err
	}

	e.matcher.Flush(e.adapter)
	out := e.sink.finish()

	if err := writeAllTolerant(e.w, out); err != nil {
		e.unusable = true
		return err
	}

	e.sink.out = nil
	e.sink.cmdIndex = 0

	return nil
}

// lz77SinkAdapter bridges the match-finder's generic Code token to this
// package's Dialect-aware command sink.
type lz77SinkAdapter[D Dialect] struct {
	sink *sink[D]
}

func (a lz77SinkAdapter[D]) Consume(code lz77.Code) {
	if code.Literal {
		a.sink.consume(literalToken(code.Byte))
		return
	}
	a.sink.consume(pointerToken(code.Length, code.Distance))
}

// writeAllTolerant writes buf to w in full, retrying on interrupt-class
// transient errors, failing with ErrWriteZero on a write that reports
// zero bytes and no error, and propagating every other error as-is.
func writeAllTolerant(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if n == 0 && err == nil {
			return ErrWriteZero
		}

		buf = buf[n:]

		if err != nil {
			if isInterrupted(err) {
				continue
			}
			return wrapIO(err, "prs: encoder write failed")
		}
	}

	return nil
}
