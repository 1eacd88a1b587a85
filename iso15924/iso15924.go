/*
Package iso15924 is a registry of ISO 15924 script identifiers.

It maps between the script identifiers used by the Unicode Character
Database (and by package unicode of the Go standard library, e.g.
"Old_Italic") and 4-letter ISO 15924 script codes (e.g. "Ital"), and it
knows the horizontal writing direction of each script.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package iso15924

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/bidi"
)

// Pseudo-script codes from the UCD. Zyyy and Zinh flag code-points without
// a script of their own (punctuation, digits, combining marks), Zzzz flags
// unassigned or otherwise unknown code-points.
const (
	Common    = "Zyyy"
	Inherited = "Zinh"
	Unknown   = "Zzzz"
)

// IsPseudo returns true for the script codes which do not denote a concrete
// writing system (Common, Inherited, Unknown).
func IsPseudo(code string) bool {
	return code == Common || code == Inherited || code == Unknown
}

// CodeFor returns the ISO 15924 code for a UCD script identifier, e.g.
// "Latn" for "Latin". The second return value is false if the identifier
// is not a known script.
func CodeFor(ucdName string) (string, bool) {
	setupOnce.Do(setupTables)
	code, ok := codeFromName[ucdName]
	return code, ok
}

// UCDName returns the UCD script identifier for an ISO 15924 code, e.g.
// "Old_Italic" for "Ital".
func UCDName(code string) (string, bool) {
	setupOnce.Do(setupTables)
	name, ok := nameFromCode[code]
	return name, ok
}

// DisplayName returns a human readable, locale-independent script name for
// an ISO 15924 code: the UCD identifier with underscores replaced by
// blanks, e.g. "Old Italic" for "Ital". It returns the code itself for
// unknown codes.
func DisplayName(code string) string {
	name, ok := UCDName(code)
	if !ok {
		return code
	}
	return strings.ReplaceAll(name, "_", " ")
}

// Direction returns the horizontal writing direction of a script, given as
// ISO 15924 code. Pseudo-scripts have no direction of their own and yield
// bidi.Neutral; unknown codes resolve to left-to-right.
func Direction(code string) bidi.Direction {
	if IsPseudo(code) {
		return bidi.Neutral
	}
	if rtlScripts[code] {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}

// --- Tables ----------------------------------------------------------------

var setupOnce sync.Once

var codeFromName map[string]string
var nameFromCode map[string]string

func setupTables() {
	codeFromName = make(map[string]string, len(scriptRegistry))
	nameFromCode = make(map[string]string, len(scriptRegistry))
	for _, s := range scriptRegistry {
		codeFromName[s.name] = s.code
		nameFromCode[s.code] = s.name
	}
}

// Scripts written right-to-left. Mirrors the direction classification of
// the ISO 15924 registry (cf. HarfBuzz' script direction table).
var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Armi": true, "Avst": true,
	"Chrs": true, "Cprt": true, "Elym": true, "Hatr": true,
	"Hebr": true, "Hung": true, "Khar": true, "Lydi": true,
	"Mand": true, "Mani": true, "Mend": true, "Merc": true,
	"Mero": true, "Narb": true, "Nbat": true, "Nkoo": true,
	"Orkh": true, "Ougr": true, "Palm": true, "Phli": true,
	"Phlp": true, "Phnx": true, "Prti": true, "Rohg": true,
	"Samr": true, "Sarb": true, "Sogd": true, "Sogo": true,
	"Syrc": true, "Thaa": true, "Yezi": true,
}

// scriptRegistry lists every script of the UCD version backing package
// unicode of the standard library, together with its ISO 15924 code.
var scriptRegistry = []struct {
	name string // UCD script identifier, as in unicode.Scripts
	code string // ISO 15924 code
}{
	{"Adlam", "Adlm"},
	{"Ahom", "Ahom"},
	{"Anatolian_Hieroglyphs", "Hluw"},
	{"Arabic", "Arab"},
	{"Armenian", "Armn"},
	{"Avestan", "Avst"},
	{"Balinese", "Bali"},
	{"Bamum", "Bamu"},
	{"Bassa_Vah", "Bass"},
	{"Batak", "Batk"},
	{"Bengali", "Beng"},
	{"Bhaiksuki", "Bhks"},
	{"Bopomofo", "Bopo"},
	{"Brahmi", "Brah"},
	{"Braille", "Brai"},
	{"Buginese", "Bugi"},
	{"Buhid", "Buhd"},
	{"Canadian_Aboriginal", "Cans"},
	{"Carian", "Cari"},
	{"Caucasian_Albanian", "Aghb"},
	{"Chakma", "Cakm"},
	{"Cham", "Cham"},
	{"Cherokee", "Cher"},
	{"Chorasmian", "Chrs"},
	{"Common", "Zyyy"},
	{"Coptic", "Copt"},
	{"Cuneiform", "Xsux"},
	{"Cypriot", "Cprt"},
	{"Cypro_Minoan", "Cpmn"},
	{"Cyrillic", "Cyrl"},
	{"Deseret", "Dsrt"},
	{"Devanagari", "Deva"},
	{"Dives_Akuru", "Diak"},
	{"Dogra", "Dogr"},
	{"Duployan", "Dupl"},
	{"Egyptian_Hieroglyphs", "Egyp"},
	{"Elbasan", "Elba"},
	{"Elymaic", "Elym"},
	{"Ethiopic", "Ethi"},
	{"Georgian", "Geor"},
	{"Glagolitic", "Glag"},
	{"Gothic", "Goth"},
	{"Grantha", "Gran"},
	{"Greek", "Grek"},
	{"Gujarati", "Gujr"},
	{"Gunjala_Gondi", "Gong"},
	{"Gurmukhi", "Guru"},
	{"Han", "Hani"},
	{"Hangul", "Hang"},
	{"Hanifi_Rohingya", "Rohg"},
	{"Hanunoo", "Hano"},
	{"Hatran", "Hatr"},
	{"Hebrew", "Hebr"},
	{"Hiragana", "Hira"},
	{"Imperial_Aramaic", "Armi"},
	{"Inherited", "Zinh"},
	{"Inscriptional_Pahlavi", "Phli"},
	{"Inscriptional_Parthian", "Prti"},
	{"Javanese", "Java"},
	{"Kaithi", "Kthi"},
	{"Kannada", "Knda"},
	{"Katakana", "Kana"},
	{"Kawi", "Kawi"},
	{"Kayah_Li", "Kali"},
	{"Kharoshthi", "Khar"},
	{"Khitan_Small_Script", "Kits"},
	{"Khmer", "Khmr"},
	{"Khojki", "Khoj"},
	{"Khudawadi", "Sind"},
	{"Lao", "Laoo"},
	{"Latin", "Latn"},
	{"Lepcha", "Lepc"},
	{"Limbu", "Limb"},
	{"Linear_A", "Lina"},
	{"Linear_B", "Linb"},
	{"Lisu", "Lisu"},
	{"Lycian", "Lyci"},
	{"Lydian", "Lydi"},
	{"Mahajani", "Mahj"},
	{"Makasar", "Maka"},
	{"Malayalam", "Mlym"},
	{"Mandaic", "Mand"},
	{"Manichaean", "Mani"},
	{"Marchen", "Marc"},
	{"Masaram_Gondi", "Gonm"},
	{"Medefaidrin", "Medf"},
	{"Meetei_Mayek", "Mtei"},
	{"Mende_Kikakui", "Mend"},
	{"Meroitic_Cursive", "Merc"},
	{"Meroitic_Hieroglyphs", "Mero"},
	{"Miao", "Plrd"},
	{"Modi", "Modi"},
	{"Mongolian", "Mong"},
	{"Mro", "Mroo"},
	{"Multani", "Mult"},
	{"Myanmar", "Mymr"},
	{"Nabataean", "Nbat"},
	{"Nag_Mundari", "Nagm"},
	{"Nandinagari", "Nand"},
	{"New_Tai_Lue", "Talu"},
	{"Newa", "Newa"},
	{"Nko", "Nkoo"},
	{"Nushu", "Nshu"},
	{"Nyiakeng_Puachue_Hmong", "Hmnp"},
	{"Ogham", "Ogam"},
	{"Ol_Chiki", "Olck"},
	{"Old_Hungarian", "Hung"},
	{"Old_Italic", "Ital"},
	{"Old_North_Arabian", "Narb"},
	{"Old_Permic", "Perm"},
	{"Old_Persian", "Xpeo"},
	{"Old_Sogdian", "Sogo"},
	{"Old_South_Arabian", "Sarb"},
	{"Old_Turkic", "Orkh"},
	{"Old_Uyghur", "Ougr"},
	{"Oriya", "Orya"},
	{"Osage", "Osge"},
	{"Osmanya", "Osma"},
	{"Pahawh_Hmong", "Hmng"},
	{"Palmyrene", "Palm"},
	{"Pau_Cin_Hau", "Pauc"},
	{"Phags_Pa", "Phag"},
	{"Phoenician", "Phnx"},
	{"Psalter_Pahlavi", "Phlp"},
	{"Rejang", "Rjng"},
	{"Runic", "Runr"},
	{"Samaritan", "Samr"},
	{"Saurashtra", "Saur"},
	{"Sharada", "Shrd"},
	{"Shavian", "Shaw"},
	{"Siddham", "Sidd"},
	{"SignWriting", "Sgnw"},
	{"Sinhala", "Sinh"},
	{"Sogdian", "Sogd"},
	{"Sora_Sompeng", "Sora"},
	{"Soyombo", "Soyo"},
	{"Sundanese", "Sund"},
	{"Syloti_Nagri", "Sylo"},
	{"Syriac", "Syrc"},
	{"Tagalog", "Tglg"},
	{"Tagbanwa", "Tagb"},
	{"Tai_Le", "Tale"},
	{"Tai_Tham", "Lana"},
	{"Tai_Viet", "Tavt"},
	{"Takri", "Takr"},
	{"Tamil", "Taml"},
	{"Tangsa", "Tnsa"},
	{"Tangut", "Tang"},
	{"Telugu", "Telu"},
	{"Thaana", "Thaa"},
	{"Thai", "Thai"},
	{"Tibetan", "Tibt"},
	{"Tifinagh", "Tfng"},
	{"Tirhuta", "Tirh"},
	{"Toto", "Toto"},
	{"Ugaritic", "Ugar"},
	{"Vai", "Vaii"},
	{"Vithkuqi", "Vith"},
	{"Wancho", "Wcho"},
	{"Warang_Citi", "Wara"},
	{"Yezidi", "Yezi"},
	{"Yi", "Yiii"},
	{"Zanabazar_Square", "Zanb"},
}
