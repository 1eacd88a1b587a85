package uniprop

import (
	"errors"
	"fmt"
)

// Character construction can fail in exactly four ways, all of them
// terminal: empty input, input which is not well-formed UTF-8, more than
// one user perceived character, or one user perceived character composed
// of several code-points. Once a Character exists, no property access
// can fail.

// ErrEmptyInput flags a Character constructed from a zero-length string.
var ErrEmptyInput = errors.New("uniprop: empty input, expected a single character")

// ErrMalformedInput flags input which is not well-formed UTF-8. Decoding
// such input would fabricate U+FFFD code-points not present in it.
var ErrMalformedInput = errors.New("uniprop: input is not well-formed UTF-8")

// GraphemeCountError flags input with more than one grapheme cluster,
// i.e. more than one user perceived character.
type GraphemeCountError struct {
	Count int // number of grapheme clusters found
}

func (e *GraphemeCountError) Error() string {
	return fmt.Sprintf("uniprop: expected a single character, input has %d user perceived characters (grapheme clusters)",
		e.Count)
}

// CodePointCountError flags input which is a single user perceived
// character, but one composed of several code-points (a base letter plus
// combining marks, a flag emoji, …). Unicode defines character
// properties per code-point, so such input cannot be analyzed as one
// Character; use package segment to work with grapheme clusters.
type CodePointCountError struct {
	CodePoints int // number of code-points in the cluster
}

func (e *CodePointCountError) Error() string {
	return fmt.Sprintf("uniprop: input is visually one character but technically %d code-points; properties are defined per code-point, use package segment for grapheme clusters",
		e.CodePoints)
}

// InvalidCodePointError flags a numeric value outside the Unicode
// code space, or inside the surrogate range.
type InvalidCodePointError struct {
	Value rune
}

func (e *InvalidCodePointError) Error() string {
	return fmt.Sprintf("uniprop: not a valid Unicode code-point: %#x", e.Value)
}
