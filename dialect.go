package prs

// Dialect selects one of the two incompatible PRS wire-format flavors.
// Buffers carry no dialect tag of their own; callers must know out of band
// which one a given stream was produced with.
//
// Dialect is sealed: only Legacy and Modern may implement it. A third
// variant would need a correct (minLongCopyLength, maxCopyLength) pair or
// it silently corrupts the long-long pointer encoding (§4.1), so extension
// is not exposed.
type Dialect interface {
	minLongCopyLength() int
	maxCopyLength() int

	sealedDialect()
}

// Legacy is the PRS dialect used by Dreamcast and Saturn era titles:
// Phantasy Star Online, Sonic Adventure, NiGHTS into Dreams, and likely
// others of the same vintage.
type Legacy struct{}

// Modern is the PRS dialect used by titles made after the Dreamcast era:
// Phantasy Star Universe, Phantasy Star Online 2.
type Modern struct{}

const (
	legacyMinLongCopyLength = 1
	modernMinLongCopyLength = 10
)

func (Legacy) minLongCopyLength() int { return legacyMinLongCopyLength }
func (Legacy) maxCopyLength() int     { return 0xff + legacyMinLongCopyLength }
func (Legacy) sealedDialect()         {}

func (Modern) minLongCopyLength() int { return modernMinLongCopyLength }
func (Modern) maxCopyLength() int     { return 0xff + modernMinLongCopyLength }
func (Modern) sealedDialect()         {}

// dialectOf returns the zero value of D, which for both Legacy and Modern
// is a usable instance since neither carries any state.
func dialectOf[D Dialect]() D {
	var d D
	return d
}
