/*
Package segment provides Unicode text boundary analysis: grapheme
clusters, words, sentences and line break opportunities.

The actual boundary rules (UAX#29, UAX#14) are supplied by the runeseg
segmentation engine; this package narrows them to the small surface the
uniprop module needs and gives them a slice-returning shape.

Grapheme clusters are “user perceived characters”: one or more
code-points that render as a single glyph, such as a base letter plus
combining marks or a regional-indicator flag pair. The character
validator of the root package leans on GraphemeCount to tell a single
code-point from a single, but composed, cluster.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package segment

import (
	"unicode"

	"github.com/scalecode-solutions/runeseg"
)

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return runeseg.GraphemeClusterCount(s)
}

// FirstGrapheme returns the first grapheme cluster of s, or "" for an
// empty string.
func FirstGrapheme(s string) string {
	cluster, _, _, _ := runeseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}

// Graphemes splits s into its grapheme clusters.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s)/2+1)
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = runeseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}

// Words splits s into word tokens. Tokens consisting solely of white
// space or of punctuation are dropped, so "Hello, world!" yields
// ["Hello" "world"]. Use Tokens for the unfiltered segmentation.
func Words(s string) []string {
	var words []string
	for _, tok := range Tokens(s) {
		if !hasAlnum(tok) {
			continue
		}
		words = append(words, tok)
	}
	return words
}

// Tokens splits s at UAX#29 word boundaries without filtering; white
// space and punctuation runs appear as tokens of their own.
func Tokens(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	state := -1
	var tok string
	for len(s) > 0 {
		tok, s, state = runeseg.FirstWordInString(s, state)
		tokens = append(tokens, tok)
	}
	return tokens
}

// Sentences splits s at UAX#29 sentence boundaries. Sentences keep
// their terminating punctuation and trailing spacing.
func Sentences(s string) []string {
	if s == "" {
		return nil
	}
	var sentences []string
	state := -1
	var sent string
	for len(s) > 0 {
		sent, s, state = runeseg.FirstSentenceInString(s, state)
		sentences = append(sentences, sent)
	}
	return sentences
}

// Lines splits s into line segments, i.e. the spans between UAX#14 line
// break opportunities. Joining the segments restores s.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	var segments []string
	state := -1
	var seg string
	for len(s) > 0 {
		seg, s, _, state = runeseg.FirstLineSegmentInString(s, state)
		segments = append(segments, seg)
	}
	return segments
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
