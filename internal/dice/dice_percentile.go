package dice

import "fmt"

// PercentileDie is a StandardDie fixed at 100 sides; its notation
// renders sides as "%" unless RenderSides is set.
type PercentileDie struct {
	StandardDie
	RenderSides bool // true renders "d100" instead of "d%"
}

// NewPercentileDie constructs a PercentileDie with qty dice.
//
// Precondition: qty must be in [1, 999].
func NewPercentileDie(qty int) (*PercentileDie, error) {
	base, err := NewStandardDie(qty, 100)
	if err != nil {
		return nil, err
	}
	return &PercentileDie{StandardDie: *base}, nil
}

// Notation renders "Qtyd%Mod..." unless RenderSides is set, in which
// case it renders "Qtyd100Mod...".
func (d *PercentileDie) Notation() string {
	out := fmt.Sprintf("%dd%%%s", d.Qty, modifierNotations(d.Modifiers()))
	if d.RenderSides {
		out = fmt.Sprintf("%dd%d%s", d.Qty, d.Sides, modifierNotations(d.Modifiers()))
	}
	if d.Description != nil {
		out += d.Description.render()
	}
	return out
}

// RollOnce and Roll are inherited from StandardDie via embedding, but
// Roll must be re-declared so the die passed to rollDie reports this
// type's Notation(), not the embedded StandardDie's.
func (d *PercentileDie) Roll(gen *Generator, eval *Evaluator) (RollResults, error) {
	return rollDie(d, gen, eval, d.Qty)
}
