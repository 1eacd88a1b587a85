package uniprop

import "fmt"

// CodePoint is a single Unicode code-point. Valid code-points lie in
// [0, 0x10FFFF], excluding the surrogate range.
type CodePoint rune

// MaxCodePoint is the largest valid Unicode code-point.
const MaxCodePoint CodePoint = 0x10FFFF

const surrogateMin, surrogateMax CodePoint = 0xD800, 0xDFFF

// IsValid reports whether cp denotes a Unicode scalar value, i.e. lies
// in range and is not a surrogate.
func (cp CodePoint) IsValid() bool {
	if cp < 0 || cp > MaxCodePoint {
		return false
	}
	return cp < surrogateMin || cp > surrogateMax
}

// Rune returns the code-point as a Go rune.
func (cp CodePoint) Rune() rune {
	return rune(cp)
}

// String formats the code-point in the conventional U+XXXX notation.
func (cp CodePoint) String() string {
	return fmt.Sprintf("U+%04X", rune(cp))
}
