package prs

// Effort selects how hard the match-finder searches for the longest
// back-reference at each position, the same ratio/speed axis the teacher
// library exposes as a numeric compression level. PRS has no on-wire
// notion of level — Dialect already occupies the format's one variance
// axis — so Effort only ever affects encode time and, since a shorter
// search can settle for a shorter match, the size of the compressed
// output; it never changes what a Decoder accepts.
type Effort int

const (
	// EffortFast probes the fewest hash-chain candidates. Use it for
	// large inputs where encode latency matters more than ratio.
	EffortFast Effort = 1

	// EffortDefault is a balanced probe depth, used when EncoderOptions
	// doesn't specify an Effort.
	EffortDefault Effort = 5

	// EffortMax probes the most candidates per position for the best
	// achievable ratio.
	EffortMax Effort = 9
)

// maxChainProbes maps an Effort to a hash-chain probe depth, following
// the same shape as the teacher library's per-level maxChain table but
// collapsed to a single axis since PRS has no lazy-matching mode switch.
func (e Effort) maxChainProbes() int {
	switch {
	case e <= 1:
		return 4
	case e == 2:
		return 8
	case e == 3:
		return 16
	case e == 4:
		return 32
	case e == 5:
		return 64
	case e == 6:
		return 128
	case e == 7:
		return 256
	case e == 8:
		return 512
	default:
		return 1024
	}
}
