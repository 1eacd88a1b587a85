/*
Package uniprop provides merged Unicode character properties.

Description

Character properties (general category, script, bidi class, numeric
values, decomposition and so on) are defined by the Unicode Character
Database at the granularity of a single code-point. uniprop wraps that
data behind an object-oriented facade, the Character type, and enriches
script classification by merging two property sources:

▪︎ a primary source (package ucd), backed by the Unicode Character
Database tables of the Go standard library and golang.org/x/text, and

▪︎ an optional secondary source (package scriptmeta), a script-metadata
provider in the manner of font libraries, which additionally knows
script extensions, script display names and writing direction.

The two sources may disagree or the secondary one may be absent
altogether. A merge policy engine resolves every property request
deterministically: script classification prefers the secondary source
unconditionally, script extensions exist only when the secondary source
does, and all remaining properties are answered by the primary source
alone. Which source won is recorded per resolution for diagnosis.

Characters versus graphemes

A Character wraps exactly one code-point. Many user perceived
characters (grapheme clusters) consist of several code-points, such as
a letter plus combining accents or a regional-indicator flag pair, and
Unicode does not define per-cluster properties. Construction therefore
rejects such input with a dedicated error instead of silently analyzing
the first code-point; use package segment for grapheme-aware text
processing. This is a deliberate, documented boundary of the API.

Properties of a Character are computed on first access and cached for
the lifetime of the instance. Instances are cheap to construct and not
meant to be shared across goroutines without synchronization.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package uniprop
