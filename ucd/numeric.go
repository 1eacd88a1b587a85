package ucd

import (
	"math/big"
	"unicode"
)

// The UCD defines three independent numeric facets. Every decimal digit
// is a digit, and every digit has a numeric value, but not the other way
// around: "³" has a digit value but no decimal value, and "½" has a
// numeric value but neither digit nor decimal value.

// Decimal returns the decimal digit value of a code-point, i.e. its value
// when used as a positional digit. The second return value is false for
// code-points which are not decimal digits.
func (DB) Decimal(r rune) (int, bool) {
	return decimalValue(r)
}

// Digit returns the digit value of a code-point. This covers the decimal
// digits plus digit-like forms such as superscripts and circled digits.
// The second return value is false for code-points without a digit value.
func (DB) Digit(r rune) (int, bool) {
	if v, ok := decimalValue(r); ok {
		return v, true
	}
	v, ok := digitTable[r]
	return v, ok
}

// Numeric returns the numeric value of a code-point as an exact rational
// number, covering digits as well as fractions ("½" → 1/2), Roman
// numerals and ideographic numbers. The second return value is false for
// code-points without a numeric value.
func (DB) Numeric(r rune) (*big.Rat, bool) {
	if v, ok := (DB{}).Digit(r); ok {
		return big.NewRat(int64(v), 1), true
	}
	if f, ok := numericTable[r]; ok {
		return big.NewRat(f.num, f.den), true
	}
	return nil, false
}

// The Nd category consists of runs of exactly ten code-points, digit zero
// through digit nine, in ascending order (a UCD invariant). The decimal
// value of a digit is therefore its distance to the start of its run.
func decimalValue(r rune) (int, bool) {
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	v := 0
	for v < 9 && unicode.Is(unicode.Nd, r-rune(v)-1) {
		v++
	}
	return v, true
}

// Digit values of non-decimal digit forms (category No with Numeric_Type
// Digit): superscripts, subscripts, circled and parenthesized digits.
var digitTable = map[rune]int{
	0x00B9: 1, 0x00B2: 2, 0x00B3: 3, // superscript one, two, three
	0x2070: 0, // superscript zero
	0x2074: 4, 0x2075: 5, 0x2076: 6, 0x2077: 7, 0x2078: 8, 0x2079: 9,
	0x2080: 0, 0x2081: 1, 0x2082: 2, 0x2083: 3, 0x2084: 4, // subscripts
	0x2085: 5, 0x2086: 6, 0x2087: 7, 0x2088: 8, 0x2089: 9,
	0x2460: 1, 0x2461: 2, 0x2462: 3, 0x2463: 4, 0x2464: 5, // circled
	0x2465: 6, 0x2466: 7, 0x2467: 8, 0x2468: 9,
	0x2474: 1, 0x2475: 2, 0x2476: 3, 0x2477: 4, 0x2478: 5, // parenthesized
	0x2479: 6, 0x247A: 7, 0x247B: 8, 0x247C: 9,
	0x2488: 1, 0x2489: 2, 0x248A: 3, 0x248B: 4, 0x248C: 5, // with full stop
	0x248D: 6, 0x248E: 7, 0x248F: 8, 0x2490: 9,
	0x24EA: 0, // circled zero
	0x24F5: 1, 0x24F6: 2, 0x24F7: 3, 0x24F8: 4, 0x24F9: 5, // double circled
	0x24FA: 6, 0x24FB: 7, 0x24FC: 8, 0x24FD: 9,
	0x2776: 1, 0x2777: 2, 0x2778: 3, 0x2779: 4, 0x277A: 5, // dingbat circled
	0x277B: 6, 0x277C: 7, 0x277D: 8, 0x277E: 9,
	0x2780: 1, 0x2781: 2, 0x2782: 3, 0x2783: 4, 0x2784: 5,
	0x2785: 6, 0x2786: 7, 0x2787: 8, 0x2788: 9,
	0x278A: 1, 0x278B: 2, 0x278C: 3, 0x278D: 4, 0x278E: 5,
	0x278F: 6, 0x2790: 7, 0x2791: 8, 0x2792: 9,
}

type fraction struct {
	num, den int64
}

// Numeric values of code-points with Numeric_Type Numeric: vulgar
// fractions, Roman numerals and the common ideographic numbers.
var numericTable = map[rune]fraction{
	// vulgar fractions
	0x00BC: {1, 4}, 0x00BD: {1, 2}, 0x00BE: {3, 4},
	0x2150: {1, 7}, 0x2151: {1, 9}, 0x2152: {1, 10},
	0x2153: {1, 3}, 0x2154: {2, 3},
	0x2155: {1, 5}, 0x2156: {2, 5}, 0x2157: {3, 5}, 0x2158: {4, 5},
	0x2159: {1, 6}, 0x215A: {5, 6},
	0x215B: {1, 8}, 0x215C: {3, 8}, 0x215D: {5, 8}, 0x215E: {7, 8},
	0x215F: {1, 1}, // fraction numerator one
	0x2189: {0, 3}, // vulgar fraction zero thirds
	// Roman numerals
	0x2160: {1, 1}, 0x2161: {2, 1}, 0x2162: {3, 1}, 0x2163: {4, 1},
	0x2164: {5, 1}, 0x2165: {6, 1}, 0x2166: {7, 1}, 0x2167: {8, 1},
	0x2168: {9, 1}, 0x2169: {10, 1}, 0x216A: {11, 1}, 0x216B: {12, 1},
	0x216C: {50, 1}, 0x216D: {100, 1}, 0x216E: {500, 1}, 0x216F: {1000, 1},
	0x2170: {1, 1}, 0x2171: {2, 1}, 0x2172: {3, 1}, 0x2173: {4, 1},
	0x2174: {5, 1}, 0x2175: {6, 1}, 0x2176: {7, 1}, 0x2177: {8, 1},
	0x2178: {9, 1}, 0x2179: {10, 1}, 0x217A: {11, 1}, 0x217B: {12, 1},
	0x217C: {50, 1}, 0x217D: {100, 1}, 0x217E: {500, 1}, 0x217F: {1000, 1},
	0x2180: {1000, 1}, 0x2181: {5000, 1}, 0x2182: {10000, 1},
	// ideographic numbers
	0x3007: {0, 1},     // 〇
	0x4E00: {1, 1},     // 一
	0x4E8C: {2, 1},     // 二
	0x4E09: {3, 1},     // 三
	0x56DB: {4, 1},     // 四
	0x4E94: {5, 1},     // 五
	0x516D: {6, 1},     // 六
	0x4E03: {7, 1},     // 七
	0x516B: {8, 1},     // 八
	0x4E5D: {9, 1},     // 九
	0x5341: {10, 1},    // 十
	0x767E: {100, 1},   // 百
	0x5343: {1000, 1},  // 千
	0x4E07: {10000, 1}, // 万
	0x96F6: {0, 1},     // 零
}
