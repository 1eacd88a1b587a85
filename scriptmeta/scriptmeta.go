/*
Package scriptmeta is a script-metadata property source.

It answers script classification queries the way a font-metadata library
would: per code-point script, script extensions (scripts a shared
code-point is used with), human readable script names and writing
direction hints.

The source is optional at process level. A Source constructed with
Unavailable answers every query with "no opinion", never with a
fabricated value, and clients are expected to fall back to the primary
UCD source. Whether the source is available is decided once, at
construction time; there is no later re-probing.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package scriptmeta

import (
	"unicode"

	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/uniprop/iso15924"
)

// Source answers script metadata queries. The zero value is an
// unavailable source; use New for an available one. Sources are
// read-only and safe to share between goroutines.
type Source struct {
	available bool
}

// New returns an available script-metadata source.
func New() *Source {
	return &Source{available: true}
}

// Unavailable returns a source which is absent for the process lifetime:
// every query answers with "no opinion".
func Unavailable() *Source {
	return &Source{}
}

// Available reports whether the source can answer queries at all.
func (s *Source) Available() bool {
	return s.available
}

// Script returns the ISO 15924 script code of a code-point. The second
// return value is false when the source is unavailable.
func (s *Source) Script(r rune) (string, bool) {
	if !s.available {
		return "", false
	}
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			if code, ok := iso15924.CodeFor(name); ok {
				return code, true
			}
			return iso15924.Unknown, true
		}
	}
	return iso15924.Unknown, true
}

// ScriptExtensions returns the scripts a code-point is used with, as ISO
// 15924 codes. Code-points shared across writing systems (e.g. the
// Arabic comma, the Devanagari danda) list every script that uses them;
// all other code-points list just their own script. The second return
// value is false when the source is unavailable.
func (s *Source) ScriptExtensions(r rune) ([]string, bool) {
	if !s.available {
		return nil, false
	}
	if ext := extensionsFor(r); ext != nil {
		out := make([]string, len(ext))
		copy(out, ext)
		return out, true
	}
	code, _ := s.Script(r)
	return []string{code}, true
}

// ScriptName returns the human readable name of a script code, e.g.
// "Old Italic" for "Ital". The second return value is false when the
// source is unavailable.
func (s *Source) ScriptName(code string) (string, bool) {
	if !s.available {
		return "", false
	}
	return iso15924.DisplayName(code), true
}

// Direction returns the horizontal writing direction of a script code.
// The second return value is false when the source is unavailable.
func (s *Source) Direction(code string) (bidi.Direction, bool) {
	if !s.available {
		return bidi.Neutral, false
	}
	return iso15924.Direction(code), true
}
