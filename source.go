package uniprop

import (
	"math/big"

	"golang.org/x/text/unicode/bidi"
)

// PrimarySource is the contract of the authoritative character database
// (package ucd provides the default implementation). Every query is a
// pure function of the code-point and must not fail: unassigned
// code-points yield well-defined defaults (category "Cn", empty name,
// no numeric value) rather than errors.
type PrimarySource interface {
	Category(r rune) string
	Name(r rune) string
	BidiClass(r rune) string
	CombiningClass(r rune) int
	Mirrored(r rune) bool
	Decimal(r rune) (int, bool)
	Digit(r rune) (int, bool)
	Numeric(r rune) (*big.Rat, bool)
	Decomposition(r rune) []rune
	Block(r rune) string
	Script(r rune) string
}

// SecondarySource is the contract of the supplementary script-metadata
// provider (package scriptmeta provides the default implementation).
// The source may be absent for the process lifetime; Available is
// checked before any other query, and an unavailable source answers
// every query with ok == false, never with a fabricated value.
//
// The secondary source is not required to agree with the primary one.
// Disagreement is expected and resolved by the Engine, never here.
type SecondarySource interface {
	Available() bool
	Script(r rune) (string, bool)
	ScriptExtensions(r rune) ([]string, bool)
	ScriptName(code string) (string, bool)
	Direction(code string) (bidi.Direction, bool)
}

// Winner identifies the source that supplied a resolved property value.
type Winner int8

// Winners of a property resolution.
const (
	WinnerNone Winner = iota
	WinnerPrimary
	WinnerSecondary
)

func (w Winner) String() string {
	switch w {
	case WinnerPrimary:
		return "primary"
	case WinnerSecondary:
		return "secondary"
	}
	return "none"
}

// MergeDecision records, for a single (code-point, property) resolution,
// which source supplied the winning value and whether the preferred
// source was unavailable and a fallback occurred. Decisions are
// diagnostic; they are traced but not part of property values.
type MergeDecision struct {
	Property string
	Winner   Winner
	Fallback bool
}
