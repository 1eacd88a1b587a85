package ucd

import "unicode"

// Code-points with the Bidi_Mirrored property: paired punctuation and
// directional mathematical operators. Neither package unicode nor
// x/text/unicode/bidi exposes this property, so the ranges are carried
// here, UnicodeData.txt field 9.
var mirroredTable = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x0028, 0x0029, 1}, // ( )
		{0x003C, 0x003C, 1}, // <
		{0x003E, 0x003E, 1}, // >
		{0x005B, 0x005B, 1}, // [
		{0x005D, 0x005D, 1}, // ]
		{0x007B, 0x007B, 1}, // {
		{0x007D, 0x007D, 1}, // }
		{0x00AB, 0x00AB, 1}, // «
		{0x00BB, 0x00BB, 1}, // »
		{0x2039, 0x203A, 1}, // single guillemets
		{0x2045, 0x2046, 1}, // square brackets with quill
		{0x207D, 0x207E, 1}, // superscript parentheses
		{0x208D, 0x208E, 1}, // subscript parentheses
		{0x2208, 0x220D, 1}, // element-of signs
		{0x2215, 0x2215, 1}, // division slash
		{0x223C, 0x223D, 1}, // tilde operator, reversed tilde
		{0x2243, 0x2243, 1}, // asymptotically equal to
		{0x2252, 0x2255, 1}, // image-of / approaches-the-limit family
		{0x2264, 0x226B, 1}, // less-than/greater-than family
		{0x2276, 0x227B, 1}, // less-than/greater-than variants
		{0x2282, 0x228B, 1}, // subset/superset family
		{0x22A2, 0x22A3, 1}, // turnstiles
		{0x2308, 0x230B, 1}, // ceiling and floor
		{0x2329, 0x232A, 1}, // angle brackets (deprecated)
		{0x2768, 0x2775, 1}, // ornament brackets
		{0x27C5, 0x27C6, 1}, // s-shaped bag delimiters
		{0x27E6, 0x27EF, 1}, // mathematical brackets
		{0x2983, 0x2998, 1}, // bracket variants
		{0x29FC, 0x29FD, 1}, // curved angle brackets
		{0x3008, 0x3011, 1}, // CJK angle/corner/lenticular brackets
		{0x3014, 0x301B, 1}, // CJK tortoise shell brackets et al.
		{0xFE59, 0xFE5E, 1}, // small form brackets
		{0xFE64, 0xFE65, 1}, // small form less-than/greater-than
		{0xFF08, 0xFF09, 1}, // fullwidth parentheses
		{0xFF1C, 0xFF1C, 1}, // fullwidth <
		{0xFF1E, 0xFF1E, 1}, // fullwidth >
		{0xFF3B, 0xFF3B, 1}, // fullwidth [
		{0xFF3D, 0xFF3D, 1}, // fullwidth ]
		{0xFF5B, 0xFF5B, 1}, // fullwidth {
		{0xFF5D, 0xFF5D, 1}, // fullwidth }
		{0xFF5F, 0xFF60, 1}, // fullwidth white parentheses
		{0xFF62, 0xFF63, 1}, // halfwidth corner brackets
	},
	LatinOffset: 9,
}
