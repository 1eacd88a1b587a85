/*
Package ucd answers character property queries from the Unicode Character
Database, as carried by the Go standard library and golang.org/x/text.

It is the primary (authoritative) property source of the uniprop module.
Every query is a pure function of the code-point and never fails: queries
for unassigned code-points yield well-defined defaults (category "Cn",
empty name, no numeric value) instead of errors.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ucd

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"

	"github.com/npillmayer/uniprop/iso15924"
)

// DB is a handle on the Unicode Character Database. It holds no mutable
// state; a zero DB is ready for use and safe to share between goroutines.
type DB struct{}

// New returns a handle on the Unicode Character Database.
func New() DB {
	return DB{}
}

// Category returns the two-letter general category of a code-point, e.g.
// "Lu" for an upper-case letter or "Nd" for a decimal digit. Unassigned
// code-points are reported as "Cn".
func (DB) Category(r rune) string {
	for name, table := range unicode.Categories {
		if len(name) != 2 {
			continue // skip the one-letter umbrella categories
		}
		if unicode.Is(table, r) {
			return name
		}
	}
	return "Cn"
}

// Name returns the Unicode name of a code-point, e.g. "EURO SIGN".
// Code-points without a name (controls, unassigned) yield "".
func (DB) Name(r rune) string {
	name := runenames.Name(r)
	if strings.HasPrefix(name, "<") {
		// runenames flags unnamed code-points with placeholders
		// like "<control>"; the UCD name of those is empty.
		return ""
	}
	return name
}

// BidiClass returns the bidirectional class of a code-point as the short
// UCD code, e.g. "L", "R", "AL" or "EN".
func (DB) BidiClass(r rune) string {
	props, _ := bidi.LookupRune(r)
	return bidiClassCodes[props.Class()]
}

// bidiClassCodes maps x/text bidi classes to UCD short codes. The x/text
// package lumps the explicit formatting characters (LRE, RLO, PDF, …)
// into a single Control class; we report those as "BN".
var bidiClassCodes = map[bidi.Class]string{
	bidi.L:       "L",
	bidi.R:       "R",
	bidi.AL:      "AL",
	bidi.EN:      "EN",
	bidi.ES:      "ES",
	bidi.ET:      "ET",
	bidi.AN:      "AN",
	bidi.CS:      "CS",
	bidi.B:       "B",
	bidi.S:       "S",
	bidi.WS:      "WS",
	bidi.ON:      "ON",
	bidi.BN:      "BN",
	bidi.NSM:     "NSM",
	bidi.Control: "BN",
}

// CombiningClass returns the canonical combining class of a code-point.
// Starter code-points (the vast majority) have combining class 0.
func (DB) CombiningClass(r rune) int {
	return int(norm.NFD.PropertiesString(string(r)).CCC())
}

// Mirrored reports whether a code-point has the Bidi_Mirrored property,
// i.e. is rendered mirrored in right-to-left text (brackets, some
// mathematical operators).
func (DB) Mirrored(r rune) bool {
	return unicode.Is(mirroredTable, r)
}

// Decomposition returns the canonical decomposition of a code-point as a
// sequence of code-points, or nil if the code-point does not decompose.
// Compatibility decompositions are not reported.
func (DB) Decomposition(r rune) []rune {
	d := norm.NFD.PropertiesString(string(r)).Decomposition()
	if len(d) == 0 {
		return nil
	}
	seq := make([]rune, 0, 2)
	for len(d) > 0 {
		dr, sz := utf8.DecodeRune(d)
		if dr == utf8.RuneError && sz <= 1 {
			break
		}
		seq = append(seq, dr)
		d = d[sz:]
	}
	return seq
}

// Script returns the ISO 15924 script code of a code-point, e.g. "Latn".
// Code-points without a script yield "Zyyy" (Common) or "Zinh"
// (Inherited); unassigned code-points yield "Zzzz".
//
// This is the fallback script opinion of the primary source; the
// script-metadata source is preferred for script classification.
func (DB) Script(r rune) string {
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			if code, ok := iso15924.CodeFor(name); ok {
				return code
			}
			return iso15924.Unknown
		}
	}
	return iso15924.Unknown
}
