package ucd

import (
	"math/big"
	"testing"

	"github.com/npillmayer/uniprop/internal/tracing"
)

func TestCategory(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	inputs := []struct {
		r   rune
		cat string
	}{
		{'A', "Lu"},
		{'a', "Ll"},
		{'0', "Nd"},
		{' ', "Zs"},
		{'€', "Sc"},
		{0x0301, "Mn"}, // COMBINING ACUTE ACCENT
		{0x0378, "Cn"}, // unassigned
	}
	for _, in := range inputs {
		if cat := db.Category(in.r); cat != in.cat {
			t.Errorf("category of %#U should be %s, is %s", in.r, in.cat, cat)
		}
	}
}

func TestName(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	if name := db.Name('A'); name != "LATIN CAPITAL LETTER A" {
		t.Errorf("name of A should be LATIN CAPITAL LETTER A, is %q", name)
	}
	if name := db.Name('€'); name != "EURO SIGN" {
		t.Errorf("name of € should be EURO SIGN, is %q", name)
	}
	if name := db.Name(0x0000); name != "" {
		t.Errorf("control characters have no name, have %q", name)
	}
}

func TestBidiClass(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	inputs := []struct {
		r     rune
		class string
	}{
		{'A', "L"},
		{0x05D0, "R"},  // HEBREW LETTER ALEF
		{0x0627, "AL"}, // ARABIC LETTER ALEF
		{'0', "EN"},
		{' ', "WS"},
		{',', "CS"},
	}
	for _, in := range inputs {
		if class := db.BidiClass(in.r); class != in.class {
			t.Errorf("bidi class of %#U should be %s, is %s", in.r, in.class, class)
		}
	}
}

func TestCombiningClass(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	if ccc := db.CombiningClass('a'); ccc != 0 {
		t.Errorf("starters should have combining class 0, have %d", ccc)
	}
	if ccc := db.CombiningClass(0x0301); ccc != 230 { // above
		t.Errorf("combining acute accent should have class 230, has %d", ccc)
	}
	if ccc := db.CombiningClass(0x0316); ccc != 220 { // below
		t.Errorf("combining grave accent below should have class 220, has %d", ccc)
	}
}

func TestMirrored(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	for _, r := range "()[]{}<>" {
		if !db.Mirrored(r) {
			t.Errorf("%#U should have the Bidi_Mirrored property", r)
		}
	}
	for _, r := range "aZ0!€" {
		if db.Mirrored(r) {
			t.Errorf("%#U should not have the Bidi_Mirrored property", r)
		}
	}
}

func TestDecomposition(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	seq := db.Decomposition(0x00E9) // é
	if len(seq) != 2 || seq[0] != 'e' || seq[1] != 0x0301 {
		t.Errorf("é should decompose into e + U+0301, have %v", seq)
	}
	seq = db.Decomposition(0x00C5) // Å
	if len(seq) != 2 || seq[0] != 'A' || seq[1] != 0x030A {
		t.Errorf("Å should decompose into A + U+030A, have %v", seq)
	}
	if seq = db.Decomposition('e'); seq != nil {
		t.Errorf("e should not decompose, have %v", seq)
	}
}

func TestScript(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	inputs := []struct {
		r    rune
		code string
	}{
		{'A', "Latn"},
		{0x0430, "Cyrl"},  // а
		{0x05D0, "Hebr"},  // א
		{0x3042, "Hira"},  // あ
		{0x10300, "Ital"}, // OLD ITALIC LETTER A
		{'0', "Zyyy"},
		{0x0301, "Zinh"},
		{0x0378, "Zzzz"}, // unassigned
	}
	for _, in := range inputs {
		if code := db.Script(in.r); code != in.code {
			t.Errorf("script of %#U should be %s, is %s", in.r, in.code, code)
		}
	}
}

func TestBlock(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	inputs := []struct {
		r     rune
		block string
	}{
		{'A', "Basic Latin"},
		{0x00E9, "Latin-1 Supplement"},
		{0x0416, "Cyrillic"},
		{0x20AC, "Currency Symbols"},
		{0x1F600, "Emoticons"},
	}
	for _, in := range inputs {
		if block := db.Block(in.r); block != in.block {
			t.Errorf("block of %#U should be %q, is %q", in.r, in.block, block)
		}
	}
}

func TestDecimal(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	inputs := []struct {
		r rune
		v int
	}{
		{'0', 0},
		{'7', 7},
		{0x0667, 7}, // ARABIC-INDIC DIGIT SEVEN
		{0x096F, 9}, // DEVANAGARI DIGIT NINE
		{0x0E53, 3}, // THAI DIGIT THREE
	}
	for _, in := range inputs {
		v, ok := db.Decimal(in.r)
		if !ok {
			t.Errorf("%#U should have a decimal value", in.r)
		} else if v != in.v {
			t.Errorf("decimal value of %#U should be %d, is %d", in.r, in.v, v)
		}
	}
	if _, ok := db.Decimal('x'); ok {
		t.Errorf("x should have no decimal value")
	}
	if _, ok := db.Decimal(0x00B3); ok { // ³
		t.Errorf("superscripts are digits, but not decimal digits")
	}
}

func TestDigit(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	if v, ok := db.Digit(0x00B3); !ok || v != 3 { // ³
		t.Errorf("digit value of ³ should be 3, have %d (ok=%v)", v, ok)
	}
	if v, ok := db.Digit(0x2460); !ok || v != 1 { // ①
		t.Errorf("digit value of ① should be 1, have %d (ok=%v)", v, ok)
	}
	if v, ok := db.Digit('5'); !ok || v != 5 { // decimal digits are digits too
		t.Errorf("digit value of 5 should be 5, have %d (ok=%v)", v, ok)
	}
	if _, ok := db.Digit(0x00BD); ok { // ½
		t.Errorf("½ has a numeric value, but no digit value")
	}
}

func TestNumeric(t *testing.T) {
	tracing.SetTestingLog(t)
	db := New()
	inputs := []struct {
		r        rune
		num, den int64
	}{
		{'7', 7, 1},
		{0x00BD, 1, 2},  // ½
		{0x2154, 2, 3},  // ⅔
		{0x216B, 12, 1}, // Ⅻ
		{0x216F, 1000, 1},
		{0x4E94, 5, 1}, // 五
		{0x00B2, 2, 1}, // ²
	}
	for _, in := range inputs {
		v, ok := db.Numeric(in.r)
		if !ok {
			t.Errorf("%#U should have a numeric value", in.r)
		} else if v.Cmp(big.NewRat(in.num, in.den)) != 0 {
			t.Errorf("numeric value of %#U should be %d/%d, is %s", in.r, in.num, in.den, v)
		}
	}
	if _, ok := db.Numeric('x'); ok {
		t.Errorf("x should have no numeric value")
	}
}
