package prs

// tokenKind distinguishes the two LZ77 token alternatives a match-finder
// collaborator produces for the command sink to consume.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenPointer
)

// token is the LZ77 token sum type: either a single literal byte, or a
// back-reference pointer (length, backward distance). Only one of the two
// payloads is meaningful, selected by kind.
type token struct {
	kind tokenKind

	literal byte

	length           int
	backwardDistance int
}

func literalToken(b byte) token {
	return token{kind: tokenLiteral, literal: b}
}

func pointerToken(length, backwardDistance int) token {
	return token{kind: tokenPointer, length: length, backwardDistance: backwardDistance}
}
