package uniprop

import (
	"math/big"
	"sync"

	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/uniprop/internal/tracing"
	"github.com/npillmayer/uniprop/iso15924"
	"github.com/npillmayer/uniprop/scriptmeta"
	"github.com/npillmayer/uniprop/ucd"
)

// Engine resolves character properties by merging the answers of a
// primary and a secondary property source under a fixed precedence
// policy:
//
//	script             secondary preferred, primary fallback
//	script extensions  secondary only, empty when absent
//	script name        secondary preferred, registry-derived fallback
//	everything else    primary only
//
// When both sources hold a script opinion and they disagree, the
// secondary source wins unconditionally: it tracks script-extension
// data the primary source lacks and is treated as more current for
// script classification. This is an explicit policy rule, not an
// artifact of call order.
//
// An Engine holds no mutable state and is safe to share between
// goroutines.
type Engine struct {
	primary   PrimarySource
	secondary SecondarySource
}

// NewEngine wires an engine from explicit property sources. A nil
// secondary is treated as a permanently absent one.
func NewEngine(primary PrimarySource, secondary SecondarySource) *Engine {
	if secondary == nil {
		secondary = scriptmeta.Unavailable()
	}
	return &Engine{primary: primary, secondary: secondary}
}

var defaultEngine *Engine
var defaultEngineOnce sync.Once

// DefaultEngine returns the process-wide engine over the ucd and
// scriptmeta sources. The sources are initialized on first use and live
// until process exit. (Concurrency-safe.)
func DefaultEngine() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine(ucd.New(), scriptmeta.New())
	})
	return defaultEngine
}

// --- Primary-only properties -----------------------------------------------

// Category returns the two-letter general category of a code-point,
// "Cn" for unassigned ones.
func (e *Engine) Category(cp CodePoint) string {
	return e.primary.Category(cp.Rune())
}

// Name returns the Unicode name of a code-point, "" if it has none.
func (e *Engine) Name(cp CodePoint) string {
	return e.primary.Name(cp.Rune())
}

// BidiClass returns the bidirectional class short code of a code-point.
func (e *Engine) BidiClass(cp CodePoint) string {
	return e.primary.BidiClass(cp.Rune())
}

// CombiningClass returns the canonical combining class of a code-point;
// 0 for non-combining code-points.
func (e *Engine) CombiningClass(cp CodePoint) int {
	return e.primary.CombiningClass(cp.Rune())
}

// Mirrored reports the Bidi_Mirrored property of a code-point.
func (e *Engine) Mirrored(cp CodePoint) bool {
	return e.primary.Mirrored(cp.Rune())
}

// Decimal returns the decimal digit value of a code-point, with
// ok == false for code-points that are no decimal digits.
func (e *Engine) Decimal(cp CodePoint) (int, bool) {
	return e.primary.Decimal(cp.Rune())
}

// Digit returns the digit value of a code-point, with ok == false for
// code-points without one. Not every digit is a decimal digit.
func (e *Engine) Digit(cp CodePoint) (int, bool) {
	return e.primary.Digit(cp.Rune())
}

// Numeric returns the exact numeric value of a code-point, with
// ok == false for code-points without one. The value may be a
// non-integer fraction; callers must not mutate it.
func (e *Engine) Numeric(cp CodePoint) (*big.Rat, bool) {
	return e.primary.Numeric(cp.Rune())
}

// Decomposition returns the canonical decomposition of a code-point,
// or an empty sequence if it does not decompose.
func (e *Engine) Decomposition(cp CodePoint) []CodePoint {
	seq := e.primary.Decomposition(cp.Rune())
	if len(seq) == 0 {
		return nil
	}
	out := make([]CodePoint, len(seq))
	for i, r := range seq {
		out[i] = CodePoint(r)
	}
	return out
}

// Block returns the Unicode block name of a code-point, "No_Block" for
// code-points outside every block.
func (e *Engine) Block(cp CodePoint) string {
	return e.primary.Block(cp.Rune())
}

// --- Merged script properties ----------------------------------------------

// Script returns the ISO 15924 script code of a code-point, resolved
// under the engine's precedence policy.
func (e *Engine) Script(cp CodePoint) string {
	code, _ := e.scriptMerge(cp.Rune())
	return code
}

// scriptMerge is the core precedence rule for script classification.
func (e *Engine) scriptMerge(r rune) (string, MergeDecision) {
	if e.secondary.Available() {
		if sec, ok := e.secondary.Script(r); ok {
			// The secondary opinion wins even over a disagreeing
			// primary one.
			if prim := e.primary.Script(r); prim != sec {
				tracing.P("codepoint", CodePoint(r)).Debugf(
					"script disagreement: primary %s, secondary %s, secondary wins", prim, sec)
			}
			return sec, MergeDecision{Property: "script", Winner: WinnerSecondary}
		}
	}
	return e.primary.Script(r), MergeDecision{Property: "script", Winner: WinnerPrimary, Fallback: true}
}

// ScriptExtensions returns the scripts a code-point is used with. Only
// the secondary source holds extension data; without it the result is
// the empty sequence, a valid "no extensions" answer, not an error.
func (e *Engine) ScriptExtensions(cp CodePoint) []string {
	if e.secondary.Available() {
		if ext, ok := e.secondary.ScriptExtensions(cp.Rune()); ok {
			return ext
		}
	}
	return []string{}
}

// ScriptName returns the human readable, locale-independent name of a
// code-point's script.
func (e *Engine) ScriptName(cp CodePoint) string {
	code, dec := e.scriptMerge(cp.Rune())
	if dec.Winner == WinnerSecondary {
		if name, ok := e.secondary.ScriptName(code); ok {
			return name
		}
	}
	return iso15924.DisplayName(code)
}

// ScriptDirection returns the horizontal writing direction of a
// code-point. It is taken from the script metadata when available and
// derived from the bidirectional class otherwise.
func (e *Engine) ScriptDirection(cp CodePoint) bidi.Direction {
	if e.secondary.Available() {
		code, _ := e.scriptMerge(cp.Rune())
		if dir, ok := e.secondary.Direction(code); ok {
			return dir
		}
	}
	return directionFromBidiClass(e.primary.BidiClass(cp.Rune()))
}

func directionFromBidiClass(class string) bidi.Direction {
	switch class {
	case "R", "AL", "AN":
		return bidi.RightToLeft
	case "L":
		return bidi.LeftToRight
	}
	return bidi.Neutral
}
