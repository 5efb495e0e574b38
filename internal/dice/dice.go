// Package dice implements the tabletop dice-notation evaluation
// pipeline: a grammar-driven parser, a fixed-order modifier model, an
// evaluator that rolls dice and evaluates arithmetic, and a
// serializable result tree carrying per-roll provenance.
package dice

import (
	"fmt"
	"sort"
)

// Die is the capability set every dice kind satisfies: bounds,
// notation rendering, and sampling. Implementations are Standard,
// Percentile, and Fudge.
type Die interface {
	// Min returns the lowest value a single RollOnce() can produce.
	Min() float64
	// Max returns the highest value a single RollOnce() can produce.
	Max() float64
	// Notation renders the die (and its modifiers, in order) back to
	// dice-notation text.
	Notation() string
	// Roll samples this die's quantity of independent results, then
	// runs its modifiers over them in ascending order.
	Roll(gen *Generator, eval *Evaluator) (RollResults, error)
	// RollOnce draws a single raw sample.
	RollOnce(gen *Generator) RollResult
	// Modifiers returns the die's modifier set, already sorted by
	// Order ascending (ties preserve insertion order, per spec §8
	// invariant 3).
	Modifiers() []Modifier
	// AddModifier registers m, keyed by its Name; a second call with
	// the same name replaces the first.
	AddModifier(m Modifier)
}

// StandardDie is the base dice kind: qty d sides, with configurable
// min/max (defaulting to 1 and sides).
type StandardDie struct {
	Qty         int
	Sides       int
	Description *Description
	min         float64
	max         float64

	modifiers    map[string]Modifier
	modifierKeys []string // insertion order, for stable-by-insertion tie-break
}

// NewStandardDie constructs a StandardDie with qty dice of the given
// number of sides, default min=1 and max=sides.
//
// Precondition: sides must be positive; qty must be in [1, 999].
// Postcondition: returns a ready-to-roll *StandardDie, or ErrOutOfRange.
func NewStandardDie(qty, sides int) (*StandardDie, error) {
	if sides <= 0 {
		return nil, fmt.Errorf("dice: NewStandardDie: %w: sides must be > 0, got %d", ErrOutOfRange, sides)
	}
	if qty < 1 || qty > 999 {
		return nil, fmt.Errorf("dice: NewStandardDie: %w: qty must be in [1, 999], got %d", ErrOutOfRange, qty)
	}
	return &StandardDie{
		Qty:       qty,
		Sides:     sides,
		min:       1,
		max:       float64(sides),
		modifiers: make(map[string]Modifier),
	}, nil
}

// SetBounds overrides the die's min/max sampled value.
//
// Precondition: min and max must be finite.
func (d *StandardDie) SetBounds(min, max float64) error {
	if !isFinite(min) || !isFinite(max) {
		return fmt.Errorf("dice: SetBounds: %w: min/max must be finite", ErrInvalidArgument)
	}
	d.min, d.max = min, max
	return nil
}

func (d *StandardDie) Min() float64 { return d.min }
func (d *StandardDie) Max() float64 { return d.max }

// Notation renders "QtydSidesMod1Mod2...".
func (d *StandardDie) Notation() string {
	out := fmt.Sprintf("%dd%d%s", d.Qty, d.Sides, modifierNotations(d.Modifiers()))
	if d.Description != nil {
		out += d.Description.render()
	}
	return out
}

// RollOnce draws Integer(min, max) into a fresh RollResult.
func (d *StandardDie) RollOnce(gen *Generator) RollResult {
	v := gen.Integer(int(d.min), int(d.max))
	return NewRollResult(float64(v))
}

// Roll samples Qty independent results, then applies this die's
// modifiers in ascending order.
func (d *StandardDie) Roll(gen *Generator, eval *Evaluator) (RollResults, error) {
	return rollDie(d, gen, eval, d.Qty)
}

// Modifiers returns this die's modifiers sorted by Order ascending,
// ties broken by insertion order.
func (d *StandardDie) Modifiers() []Modifier {
	return sortedModifiers(d.modifiers, d.modifierKeys)
}

// AddModifier registers m, keyed by its Name.
func (d *StandardDie) AddModifier(m Modifier) {
	addModifier(&d.modifiers, &d.modifierKeys, m)
}

// rollDie is shared sampling+modifier-application logic for any Die
// implementation: sample qty independent rolls, then run the die's
// modifiers over the resulting RollResults in order.
func rollDie(d Die, gen *Generator, eval *Evaluator, qty int) (RollResults, error) {
	rolls := make([]RollResult, qty)
	for i := range rolls {
		rolls[i] = d.RollOnce(gen)
	}
	results := RollResults{Rolls: rolls, dieMin: d.Min(), dieMax: d.Max(), dieNotation: d.Notation()}

	ctx := &ModifierContext{Die: d, Generator: gen, Evaluator: eval}
	for _, m := range d.Modifiers() {
		var err error
		results, err = m.Run(results, ctx)
		if err != nil {
			return RollResults{}, err
		}
	}
	return results, nil
}

// sortedModifiers returns the values of m ordered by Order ascending,
// breaking ties by the original insertion order recorded in keys.
func sortedModifiers(m map[string]Modifier, keys []string) []Modifier {
	out := make([]Modifier, 0, len(keys))
	for _, k := range keys {
		if mod, ok := m[k]; ok {
			out = append(out, mod)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order() < out[j].Order()
	})
	return out
}

// addModifier inserts or replaces mod in the map, recording insertion
// order the first time a name is seen.
func addModifier(m *map[string]Modifier, keys *[]string, mod Modifier) {
	name := mod.Name()
	if _, exists := (*m)[name]; !exists {
		*keys = append(*keys, name)
	}
	(*m)[name] = mod
}

// modifierNotations concatenates each modifier's Notation() in order.
func modifierNotations(mods []Modifier) string {
	var out string
	for _, m := range mods {
		out += m.Notation()
	}
	return out
}

func isFinite(v float64) bool {
	return v == v && v < 1e308 && v > -1e308
}
