package iso15924

import (
	"testing"

	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/uniprop/internal/tracing"
)

func TestCodeFor(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []struct {
		name, code string
	}{
		{"Latin", "Latn"},
		{"Cyrillic", "Cyrl"},
		{"Old_Italic", "Ital"},
		{"Han", "Hani"},
		{"Common", "Zyyy"},
		{"Inherited", "Zinh"},
	}
	for _, in := range inputs {
		code, ok := CodeFor(in.name)
		if !ok {
			t.Errorf("%s should be a known script", in.name)
		} else if code != in.code {
			t.Errorf("code for %s should be %s, is %s", in.name, in.code, code)
		}
	}
	if _, ok := CodeFor("Klingon"); ok {
		t.Errorf("Klingon should not be a known script")
	}
}

func TestUCDName(t *testing.T) {
	tracing.SetTestingLog(t)
	if name, ok := UCDName("Ital"); !ok || name != "Old_Italic" {
		t.Errorf("UCD name of Ital should be Old_Italic, is %q", name)
	}
	if _, ok := UCDName("Qaaa"); ok {
		t.Errorf("private-use codes should be unknown to the registry")
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	tracing.SetTestingLog(t)
	for _, s := range scriptRegistry {
		code, ok := CodeFor(s.name)
		if !ok || code != s.code {
			t.Errorf("registry entry %s/%s does not round-trip (code %s)", s.name, s.code, code)
		}
		name, ok := UCDName(s.code)
		if !ok || name != s.name {
			t.Errorf("registry entry %s/%s does not round-trip (name %s)", s.name, s.code, name)
		}
		if len(s.code) != 4 {
			t.Errorf("%s is not a 4-letter ISO 15924 code", s.code)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tracing.SetTestingLog(t)
	if name := DisplayName("Ital"); name != "Old Italic" {
		t.Errorf("display name of Ital should be Old Italic, is %q", name)
	}
	if name := DisplayName("Latn"); name != "Latin" {
		t.Errorf("display name of Latn should be Latin, is %q", name)
	}
	if name := DisplayName("Qaaa"); name != "Qaaa" {
		t.Errorf("unknown codes should display as themselves, have %q", name)
	}
}

func TestIsPseudo(t *testing.T) {
	tracing.SetTestingLog(t)
	for _, code := range []string{Common, Inherited, Unknown} {
		if !IsPseudo(code) {
			t.Errorf("%s should be a pseudo-script", code)
		}
	}
	if IsPseudo("Latn") {
		t.Errorf("Latn is a concrete script")
	}
}

func TestDirection(t *testing.T) {
	tracing.SetTestingLog(t)
	inputs := []struct {
		code string
		dir  bidi.Direction
	}{
		{"Latn", bidi.LeftToRight},
		{"Grek", bidi.LeftToRight},
		{"Arab", bidi.RightToLeft},
		{"Hebr", bidi.RightToLeft},
		{"Thaa", bidi.RightToLeft},
		{"Zyyy", bidi.Neutral},
		{"Zzzz", bidi.Neutral},
	}
	for _, in := range inputs {
		if dir := Direction(in.code); dir != in.dir {
			t.Errorf("direction of %s should be %v, is %v", in.code, in.dir, dir)
		}
	}
}
