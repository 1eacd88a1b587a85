/*
Package locale carries BCP 47 locale handling for locale-aware display
names.

Locale identifier parsing is delegated to golang.org/x/text/language;
this package only adds the small factory surface the uniprop module
needs: parsing, detection of the user's environment locale, and
localized display names for languages and scripts.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package locale

import (
	"fmt"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/npillmayer/uniprop/internal/tracing"
)

// Locale represents a specific locale, wrapping a BCP 47 language tag.
// Locales are immutable values.
type Locale struct {
	tag language.Tag
}

// New parses a BCP 47 language tag, e.g. "en-US" or "sr-Latn".
func New(langTag string) (Locale, error) {
	tag, err := language.Parse(langTag)
	if err != nil {
		return Locale{}, fmt.Errorf("locale: cannot parse %q: %w", langTag, err)
	}
	return Locale{tag: tag}, nil
}

// MustNew is like New but panics on a malformed tag. Intended for
// locales known at compile time.
func MustNew(langTag string) Locale {
	return Locale{tag: language.MustParse(langTag)}
}

// FromTag wraps an already parsed language tag.
func FromTag(tag language.Tag) Locale {
	return Locale{tag: tag}
}

// Default returns the locale of the user's environment, falling back to
// "en-US" if the environment does not announce one.
func Default() Locale {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracing.Errorf(err.Error())
		userLocale = "en-US"
		tracing.Infof("locale detection failed, defaulting to %v", userLocale)
	} else {
		tracing.Infof("detected user locale %v", userLocale)
	}
	return Locale{tag: language.Make(userLocale)}
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

func (l Locale) String() string {
	return l.tag.String()
}

// Language returns the base language subtag, e.g. "en".
func (l Locale) Language() string {
	base, _ := l.tag.Base()
	return base.String()
}

// Script returns the ISO 15924 script subtag of the locale, e.g. "Latn".
// The subtag may be inferred from the language if not explicitly given.
func (l Locale) Script() string {
	script, _ := l.tag.Script()
	return script.String()
}

// Region returns the region subtag, e.g. "US", or "" if none can be
// inferred.
func (l Locale) Region() string {
	region, conf := l.tag.Region()
	if conf == language.No {
		return ""
	}
	return region.String()
}

// DisplayName returns the name of the locale in its own language, e.g.
// "Deutsch" for "de-DE".
func (l Locale) DisplayName() string {
	return display.Self.Name(l.tag)
}

// LanguageName returns the name of another locale's language in this
// locale's language, e.g. English "German" for "de".
func (l Locale) LanguageName(other Locale) string {
	return display.Languages(l.tag).Name(other.tag)
}

// ScriptName returns the display name of an ISO 15924 script code in
// this locale's language, e.g. English "Cyrillic" for "Cyrl".
func (l Locale) ScriptName(code string) (string, error) {
	script, err := language.ParseScript(code)
	if err != nil {
		return "", fmt.Errorf("locale: not an ISO 15924 code: %q: %w", code, err)
	}
	return display.Scripts(l.tag).Name(script), nil
}
