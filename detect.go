package uniprop

import (
	"context"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/uniprop/internal/tracing"
	"github.com/npillmayer/uniprop/iso15924"
)

// tallySampleLimit caps the number of sample code-points kept per script.
const tallySampleLimit = 8

// ScriptTally is the per-script share of a text analyzed by DetectScript.
type ScriptTally struct {
	Script    string         // ISO 15924 script code
	Count     int            // number of code-points classified to Script
	Sample    []CodePoint    // first code-points seen for Script, capped
	Direction bidi.Direction // horizontal writing direction of Script
}

// ScriptDetection is the outcome of classifying a text by script.
//
// Primary is the concrete script with the most code-points; the
// pseudo-scripts Zyyy (Common), Zinh (Inherited) and Zzzz (Unknown)
// are tallied but never promoted to Primary, so punctuation and digits
// do not drown out the actual writing system. A text without any
// concrete script (empty, or all punctuation) has no primary script at
// all: Primary is "", never a pseudo-script code posing as a result.
//
// Mixed reports whether more than one concrete script occurs; shared
// punctuation does not make a text mixed.
type ScriptDetection struct {
	Primary string // "" when no concrete script occurs
	Mixed   bool
	Tallies []ScriptTally // in order of first occurrence
}

// HasPrimary reports whether the text contained any concrete script.
func (det ScriptDetection) HasPrimary() bool {
	return det.Primary != ""
}

// tallySheet is the scratch state of one detector run. Sheets are
// short-lived and allocated at a high rate for small texts, so we pool
// them.
type tallySheet struct {
	perScript *linkedhashmap.Map // script code -> *ScriptTally
}

type tallyPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalTallyPool *tallyPool

func init() {
	globalTallyPool = &tallyPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &tallySheet{perScript: linkedhashmap.New()}, nil
		})
	globalTallyPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalTallyPool.opool = pool.NewObjectPool(globalTallyPool.ctx, factory, config)
}

func borrowTallySheet() *tallySheet {
	o, _ := globalTallyPool.opool.BorrowObject(globalTallyPool.ctx)
	return o.(*tallySheet)
}

func (sheet *tallySheet) releaseIntoPool() {
	sheet.perScript.Clear()
	_ = globalTallyPool.opool.ReturnObject(globalTallyPool.ctx, sheet)
}

// DetectScript classifies text by script, using the default engine.
func DetectScript(text string) ScriptDetection {
	return DefaultEngine().DetectScript(text)
}

// DetectScript classifies text by script. Every code-point is resolved
// through the engine's script merge policy and tallied under its script
// code; see ScriptDetection for how the tallies condense into a primary
// script.
//
// Classification is context-free: a combining mark tallies as Zinh no
// matter which base letter precedes it, and a shared comma tallies as
// Zyyy even in the middle of a Greek sentence.
func (e *Engine) DetectScript(text string) ScriptDetection {
	sheet := borrowTallySheet()
	defer sheet.releaseIntoPool()
	for _, r := range text {
		code, _ := e.scriptMerge(r)
		var tally *ScriptTally
		if t, ok := sheet.perScript.Get(code); ok {
			tally = t.(*ScriptTally)
		} else {
			tally = &ScriptTally{Script: code, Direction: e.scriptDirectionFor(code)}
			sheet.perScript.Put(code, tally)
		}
		tally.Count++
		if len(tally.Sample) < tallySampleLimit {
			tally.Sample = append(tally.Sample, CodePoint(r))
		}
	}
	var det ScriptDetection
	concrete, best := 0, 0
	sheet.perScript.Each(func(_ interface{}, value interface{}) {
		tally := value.(*ScriptTally)
		det.Tallies = append(det.Tallies, *tally)
		if iso15924.IsPseudo(tally.Script) {
			return
		}
		concrete++
		// ties keep the earlier script: first occurrence order is
		// the tie-break
		if tally.Count > best {
			best = tally.Count
			det.Primary = tally.Script
		}
	})
	det.Mixed = concrete > 1
	tracing.P("text", clipForTrace(text)).Debugf("detected script %s (%d scripts, mixed=%v)",
		det.Primary, len(det.Tallies), det.Mixed)
	return det
}

// scriptDirectionFor is the per-script variant of ScriptDirection, used
// when tallying: the secondary source is asked when available, the
// registry answers otherwise.
func (e *Engine) scriptDirectionFor(code string) bidi.Direction {
	if e.secondary.Available() {
		if dir, ok := e.secondary.Direction(code); ok {
			return dir
		}
	}
	return iso15924.Direction(code)
}

// clipForTrace shortens text for trace output, cutting on a rune
// boundary so the excerpt stays well-formed UTF-8.
func clipForTrace(text string) string {
	const max = 24
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "…"
}
