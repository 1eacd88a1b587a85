package uniprop

import (
	"unicode/utf8"

	"github.com/npillmayer/uniprop/internal/tracing"
	"github.com/npillmayer/uniprop/segment"
)

// Validate checks that input is acceptable as a single logical character
// for property analysis and returns its code-point.
//
// The rules, applied in order:
//
//  1. empty input fails with ErrEmptyInput;
//  2. input which is not well-formed UTF-8 fails with ErrMalformedInput
//     (decoding it would substitute U+FFFD for the broken bytes and
//     analyze a code-point the input never contained);
//  3. input with more than one grapheme cluster fails with a
//     GraphemeCountError carrying the cluster count;
//  4. input which is one grapheme cluster spanning several code-points
//     fails with a CodePointCountError carrying the code-point count.
//
// Silently analyzing just the first code-point of composed input would
// produce misleading results (the category of a base letter with the
// accent discarded), hence the explicit, named failures.
func Validate(input string) (CodePoint, error) {
	if input == "" {
		return 0, ErrEmptyInput
	}
	if !utf8.ValidString(input) {
		tracing.P("input", input).Debugf("rejected: malformed UTF-8")
		return 0, ErrMalformedInput
	}
	if n := segment.GraphemeCount(input); n != 1 {
		tracing.P("input", input).Debugf("rejected: %d grapheme clusters", n)
		return 0, &GraphemeCountError{Count: n}
	}
	if n := utf8.RuneCountInString(input); n != 1 {
		tracing.P("input", input).Debugf("rejected: 1 cluster of %d code-points", n)
		return 0, &CodePointCountError{CodePoints: n}
	}
	r, _ := utf8.DecodeRuneInString(input)
	return CodePoint(r), nil
}
