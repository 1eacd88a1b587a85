package scriptmeta

// Script extension records for code-points shared across writing
// systems, ScriptExtensions.txt. Only code-points with more than one
// script are listed; everything else defaults to its own script.

type scxRange struct {
	lo, hi  rune
	scripts []string
}

func extensionsFor(r rune) []string {
	for _, rg := range scxTable {
		if r >= rg.lo && r <= rg.hi {
			return rg.scripts
		}
	}
	return nil
}

var (
	scxArabicSyriac = []string{"Arab", "Syrc"}
	scxArabicDigits = []string{"Arab", "Thaa", "Yezi"}
	scxArabicPunct  = []string{"Arab", "Nkoo", "Rohg", "Syrc", "Thaa", "Yezi"}
	scxDanda        = []string{"Beng", "Deva", "Dogr", "Gran", "Gujr", "Guru",
		"Knda", "Mahj", "Mlym", "Nand", "Orya", "Sind", "Sinh", "Sylo",
		"Takr", "Taml", "Telu", "Tirh"}
	scxCJKPunct = []string{"Bopo", "Hang", "Hani", "Hira", "Kana", "Yiii"}
	scxKana     = []string{"Hira", "Kana"}
)

var scxTable = []scxRange{
	{0x060C, 0x060C, scxArabicPunct},   // ARABIC COMMA
	{0x061B, 0x061B, scxArabicPunct},   // ARABIC SEMICOLON
	{0x061F, 0x061F, scxArabicPunct},   // ARABIC QUESTION MARK
	{0x0640, 0x0640, scxArabicSyriac},  // ARABIC TATWEEL
	{0x064B, 0x0655, scxArabicSyriac},  // Arabic harakat
	{0x0660, 0x0669, scxArabicDigits},  // ARABIC-INDIC DIGITs
	{0x0670, 0x0670, scxArabicSyriac},  // ARABIC LETTER SUPERSCRIPT ALEF
	{0x0964, 0x0965, scxDanda},         // DEVANAGARI DANDA, DOUBLE DANDA
	{0x3001, 0x3002, scxCJKPunct},      // IDEOGRAPHIC COMMA, FULL STOP
	{0x3006, 0x3006, []string{"Hani"}}, // IDEOGRAPHIC CLOSING MARK
	{0x3008, 0x3011, scxCJKPunct},      // CJK brackets
	{0x3014, 0x301B, scxCJKPunct},      // CJK tortoise shell brackets
	{0x30FB, 0x30FB, scxCJKPunct},      // KATAKANA MIDDLE DOT
	{0x30FC, 0x30FC, scxKana},          // PROLONGED SOUND MARK
	{0xFF61, 0xFF65, scxCJKPunct},      // halfwidth CJK punctuation
	{0xFF70, 0xFF70, scxKana},          // halfwidth prolonged sound mark
}
