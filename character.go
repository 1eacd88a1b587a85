package uniprop

import (
	"math/big"

	"golang.org/x/text/unicode/bidi"
)

// Character is a rich view on a single Unicode code-point. Every
// property is resolved through the merge policy engine on first access
// and cached in the instance; repeated reads return the identical value
// without re-querying the sources, so a Character stays referentially
// stable even if the optional secondary source would disappear
// mid-process.
//
// Characters are only constructed through MakeCharacter or CharacterOf,
// which enforce the single-code-point contract; once constructed, no
// property accessor can fail.
//
// A Character is cheap to construct and not safe for concurrent use;
// treat it as a goroutine-local value.
type Character struct {
	cp  CodePoint
	eng *Engine

	// one memo cell per property, written once on first access
	name         *string
	category     *string
	script       *string
	scriptName   *string
	bidiClass    *string
	block        *string
	combining    *int
	mirrored     *bool
	direction    *bidi.Direction
	scriptExt    []string
	scriptExtSet bool
	decomp       []CodePoint
	decompSet    bool
	decimal      optInt
	digit        optInt
	numeric      optRat
}

type optInt struct {
	set bool // cell populated?
	ok  bool // property present?
	val int
}

type optRat struct {
	set bool
	ok  bool
	val *big.Rat
}

// MakeCharacter validates text per Validate and wraps its sole
// code-point, using the default engine.
func MakeCharacter(text string) (*Character, error) {
	return DefaultEngine().MakeCharacter(text)
}

// MakeCharacter validates text per Validate and wraps its sole
// code-point.
func (e *Engine) MakeCharacter(text string) (*Character, error) {
	cp, err := Validate(text)
	if err != nil {
		return nil, err
	}
	return &Character{cp: cp, eng: e}, nil
}

// CharacterOf wraps a raw code-point, using the default engine. It
// fails with an InvalidCodePointError for values outside the Unicode
// code space or inside the surrogate range.
func CharacterOf(r rune) (*Character, error) {
	return DefaultEngine().CharacterOf(r)
}

// CharacterOf wraps a raw code-point.
func (e *Engine) CharacterOf(r rune) (*Character, error) {
	cp := CodePoint(r)
	if !cp.IsValid() {
		return nil, &InvalidCodePointError{Value: r}
	}
	return &Character{cp: cp, eng: e}, nil
}

// CodePoint returns the code-point wrapped by the Character.
func (c *Character) CodePoint() CodePoint {
	return c.cp
}

// String returns the character itself, as a string.
func (c *Character) String() string {
	return string(c.cp.Rune())
}

// Name returns the Unicode name, e.g. "EURO SIGN"; "" if the code-point
// has none.
func (c *Character) Name() string {
	if c.name == nil {
		v := c.eng.Name(c.cp)
		c.name = &v
	}
	return *c.name
}

// Category returns the two-letter general category, e.g. "Lu".
func (c *Character) Category() string {
	if c.category == nil {
		v := c.eng.Category(c.cp)
		c.category = &v
	}
	return *c.category
}

// Script returns the ISO 15924 script code, e.g. "Latn".
func (c *Character) Script() string {
	if c.script == nil {
		v := c.eng.Script(c.cp)
		c.script = &v
	}
	return *c.script
}

// ScriptName returns the human readable script name, e.g. "Latin".
func (c *Character) ScriptName() string {
	if c.scriptName == nil {
		v := c.eng.ScriptName(c.cp)
		c.scriptName = &v
	}
	return *c.scriptName
}

// ScriptExtensions returns the scripts this code-point is used with.
// The sequence is empty (not nil-as-unknown) when the secondary
// source is absent.
func (c *Character) ScriptExtensions() []string {
	if !c.scriptExtSet {
		c.scriptExt = c.eng.ScriptExtensions(c.cp)
		c.scriptExtSet = true
	}
	out := make([]string, len(c.scriptExt))
	copy(out, c.scriptExt)
	return out
}

// ScriptDirection returns the horizontal writing direction.
func (c *Character) ScriptDirection() bidi.Direction {
	if c.direction == nil {
		v := c.eng.ScriptDirection(c.cp)
		c.direction = &v
	}
	return *c.direction
}

// BidiClass returns the bidirectional class short code, e.g. "L" or
// "AL".
func (c *Character) BidiClass() string {
	if c.bidiClass == nil {
		v := c.eng.BidiClass(c.cp)
		c.bidiClass = &v
	}
	return *c.bidiClass
}

// CombiningClass returns the canonical combining class, 0 if the
// code-point is not combining.
func (c *Character) CombiningClass() int {
	if c.combining == nil {
		v := c.eng.CombiningClass(c.cp)
		c.combining = &v
	}
	return *c.combining
}

// Mirrored reports the Bidi_Mirrored property.
func (c *Character) Mirrored() bool {
	if c.mirrored == nil {
		v := c.eng.Mirrored(c.cp)
		c.mirrored = &v
	}
	return *c.mirrored
}

// Decimal returns the decimal digit value; ok is false if the
// code-point is not a decimal digit.
func (c *Character) Decimal() (int, bool) {
	if !c.decimal.set {
		v, ok := c.eng.Decimal(c.cp)
		c.decimal = optInt{set: true, ok: ok, val: v}
	}
	return c.decimal.val, c.decimal.ok
}

// Digit returns the digit value; ok is false if the code-point has
// none. A code-point may have a digit value without a decimal value.
func (c *Character) Digit() (int, bool) {
	if !c.digit.set {
		v, ok := c.eng.Digit(c.cp)
		c.digit = optInt{set: true, ok: ok, val: v}
	}
	return c.digit.val, c.digit.ok
}

// Numeric returns the exact numeric value as a rational number; ok is
// false if the code-point has none. Fractional values like "½" resolve
// exactly (1/2), without a floating point detour. The returned value is
// a copy and free to mutate.
func (c *Character) Numeric() (*big.Rat, bool) {
	if !c.numeric.set {
		v, ok := c.eng.Numeric(c.cp)
		c.numeric = optRat{set: true, ok: ok, val: v}
	}
	if !c.numeric.ok {
		return nil, false
	}
	return new(big.Rat).Set(c.numeric.val), true
}

// Decomposition returns the canonical decomposition as a sequence of
// code-points; the sequence is empty if the code-point does not
// decompose.
func (c *Character) Decomposition() []CodePoint {
	if !c.decompSet {
		c.decomp = c.eng.Decomposition(c.cp)
		c.decompSet = true
	}
	out := make([]CodePoint, len(c.decomp))
	copy(out, c.decomp)
	return out
}

// Block returns the Unicode block name, e.g. "Basic Latin".
func (c *Character) Block() string {
	if c.block == nil {
		v := c.eng.Block(c.cp)
		c.block = &v
	}
	return *c.block
}
