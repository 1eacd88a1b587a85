package uniprop

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/uniprop/internal/tracing"
)

func TestDetectSingleScript(t *testing.T) {
	tracing.SetTestingLog(t)
	det := DetectScript("Hello")
	if det.Primary != "Latn" {
		t.Errorf("expected primary script Latn, have %s", det.Primary)
	}
	if det.Mixed {
		t.Errorf("a single-script text should not be flagged as mixed")
	}
	if len(det.Tallies) != 1 || det.Tallies[0].Count != 5 {
		t.Errorf("expected one tally counting 5 code-points, have %v", det.Tallies)
	}
}

func TestDetectSharedPunctuationIsNotMixed(t *testing.T) {
	tracing.SetTestingLog(t)
	det := DetectScript("Hello, world!")
	if det.Primary != "Latn" {
		t.Errorf("expected primary script Latn, have %s", det.Primary)
	}
	if det.Mixed {
		t.Errorf("punctuation tallies as Zyyy and must not make a text mixed")
	}
	var common *ScriptTally
	for i := range det.Tallies {
		if det.Tallies[i].Script == "Zyyy" {
			common = &det.Tallies[i]
		}
	}
	if common == nil {
		t.Fatalf("expected a Zyyy tally for punctuation and blanks, have %v", det.Tallies)
	}
	if common.Count != 3 { // comma, blank, exclamation mark
		t.Errorf("expected 3 common code-points, have %d", common.Count)
	}
}

func TestDetectMixedScripts(t *testing.T) {
	tracing.SetTestingLog(t)
	det := DetectScript("Hello мир")
	if !det.Mixed {
		t.Errorf("Latin and Cyrillic in one text should be flagged as mixed")
	}
	if det.Primary != "Latn" {
		t.Errorf("expected primary script Latn (5 vs 3 code-points), have %s", det.Primary)
	}
}

func TestDetectTieKeepsFirstScript(t *testing.T) {
	tracing.SetTestingLog(t)
	// one Latin and one Cyrillic letter: first occurrence wins the tie
	det := DetectScript("Aа")
	if det.Primary != "Latn" {
		t.Errorf("tie should resolve to the first-seen script, have %s", det.Primary)
	}
	if !det.Mixed {
		t.Errorf("two concrete scripts should be flagged as mixed")
	}
	if len(det.Tallies) != 2 || det.Tallies[0].Script != "Latn" || det.Tallies[1].Script != "Cyrl" {
		t.Errorf("tallies should appear in first-occurrence order, have %v", det.Tallies)
	}
}

func TestDetectEmptyText(t *testing.T) {
	tracing.SetTestingLog(t)
	det := DetectScript("")
	if det.HasPrimary() || det.Primary != "" {
		t.Errorf("empty text has no primary script, have %q", det.Primary)
	}
	if det.Mixed || len(det.Tallies) != 0 {
		t.Errorf("empty text should have no tallies, have %v", det.Tallies)
	}
}

func TestDetectAllCommon(t *testing.T) {
	tracing.SetTestingLog(t)
	det := DetectScript("123 ...")
	if det.HasPrimary() {
		t.Errorf("digits and punctuation alone have no primary script, have %q", det.Primary)
	}
	for _, tally := range det.Tallies {
		if tally.Script == det.Primary {
			t.Errorf("absence must not collide with a tallied script code %q", tally.Script)
		}
	}
	if det.Mixed {
		t.Errorf("pseudo-scripts must not make a text mixed")
	}
}

func TestDetectCombiningMarks(t *testing.T) {
	tracing.SetTestingLog(t)
	// decomposed é: base letter is Latn, the accent tallies as Zinh
	det := DetectScript("école")
	if det.Primary != "Latn" {
		t.Errorf("expected primary script Latn, have %s", det.Primary)
	}
	if det.Mixed {
		t.Errorf("inherited combining marks must not make a text mixed")
	}
}

func TestDetectDirection(t *testing.T) {
	tracing.SetTestingLog(t)
	det := DetectScript("שלום")
	if det.Primary != "Hebr" {
		t.Errorf("expected primary script Hebr, have %s", det.Primary)
	}
	if len(det.Tallies) != 1 || det.Tallies[0].Direction != bidi.RightToLeft {
		t.Errorf("Hebrew tally should carry direction right-to-left, have %v", det.Tallies)
	}
}

func TestDetectReuse(t *testing.T) {
	tracing.SetTestingLog(t)
	// repeated runs borrow recycled scratch state; results must not
	// carry anything over
	first := DetectScript("Hello мир")
	for i := 0; i < 10; i++ {
		det := DetectScript("Hello мир")
		if det.Primary != first.Primary || det.Mixed != first.Mixed ||
			len(det.Tallies) != len(first.Tallies) {
			t.Fatalf("run #%d disagrees with the first run: %v vs %v", i, det, first)
		}
		for j := range det.Tallies {
			if det.Tallies[j].Count != first.Tallies[j].Count {
				t.Errorf("run #%d: tally %s counts %d, first run counted %d", i,
					det.Tallies[j].Script, det.Tallies[j].Count, first.Tallies[j].Count)
			}
		}
	}
}

func TestClipKeepsRuneBoundaries(t *testing.T) {
	tracing.SetTestingLog(t)
	// multi-byte runes straddling the clip offset must not be cut apart
	long := strings.Repeat("aää", 10) // 5 bytes per group puts the clip offset mid-rune
	clipped := clipForTrace(long)
	if !utf8.ValidString(clipped) {
		t.Errorf("clipped excerpt is not well-formed UTF-8: %+q", clipped)
	}
	if !strings.HasSuffix(clipped, "…") {
		t.Errorf("long input should be marked as shortened, have %+q", clipped)
	}
	short := "Hello"
	if clipForTrace(short) != short {
		t.Errorf("short input should pass through unclipped")
	}
}

func TestDetectSampleCap(t *testing.T) {
	tracing.SetTestingLog(t)
	det := DetectScript("abcdefghijklmnop")
	if len(det.Tallies) != 1 {
		t.Fatalf("expected a single tally, have %v", det.Tallies)
	}
	tally := det.Tallies[0]
	if tally.Count != 16 {
		t.Errorf("expected 16 code-points counted, have %d", tally.Count)
	}
	if len(tally.Sample) != tallySampleLimit {
		t.Errorf("sample should be capped at %d code-points, have %d",
			tallySampleLimit, len(tally.Sample))
	}
	if tally.Sample[0] != 'a' {
		t.Errorf("sample should start with the first code-point seen, have %s", tally.Sample[0])
	}
}
