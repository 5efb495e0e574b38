package dice

import "fmt"

// FudgeDie samples {-1, 0, +1} (Fudge/FATE dice). NonBlanks controls
// how many of the six underlying faces are non-blank: 2 (default,
// uniform{1..3}-2) or 1 (sample {1..6}, map 1->-1, 6->+1, else 0).
type FudgeDie struct {
	Qty         int
	NonBlanks   int
	Description *Description

	modifiers    map[string]Modifier
	modifierKeys []string
}

// NewFudgeDie constructs a FudgeDie with qty dice and the given
// nonBlanks variant.
//
// Precondition: qty must be in [1, 999]; nonBlanks must be 1 or 2.
func NewFudgeDie(qty, nonBlanks int) (*FudgeDie, error) {
	if qty < 1 || qty > 999 {
		return nil, fmt.Errorf("dice: NewFudgeDie: %w: qty must be in [1, 999], got %d", ErrOutOfRange, qty)
	}
	if nonBlanks != 1 && nonBlanks != 2 {
		return nil, fmt.Errorf("dice: NewFudgeDie: %w: nonBlanks must be 1 or 2, got %d", ErrOutOfRange, nonBlanks)
	}
	return &FudgeDie{Qty: qty, NonBlanks: nonBlanks, modifiers: make(map[string]Modifier)}, nil
}

func (d *FudgeDie) Min() float64 { return -1 }
func (d *FudgeDie) Max() float64 { return 1 }

// Notation renders "QtydF" or "QtydF.1" for the nonBlanks=1 variant.
func (d *FudgeDie) Notation() string {
	suffix := ""
	if d.NonBlanks == 1 {
		suffix = ".1"
	}
	out := fmt.Sprintf("%ddF%s%s", d.Qty, suffix, modifierNotations(d.Modifiers()))
	if d.Description != nil {
		out += d.Description.render()
	}
	return out
}

// RollOnce samples one Fudge die per spec §3: nonBlanks=2 draws
// uniform{1,2,3}-2; nonBlanks=1 draws uniform{1..6} and maps
// 1->-1, 6->+1, else 0.
func (d *FudgeDie) RollOnce(gen *Generator) RollResult {
	var v float64
	if d.NonBlanks == 1 {
		roll := gen.Integer(1, 6)
		switch roll {
		case 1:
			v = -1
		case 6:
			v = 1
		default:
			v = 0
		}
	} else {
		v = float64(gen.Integer(1, 3) - 2)
	}
	return NewRollResult(v)
}

func (d *FudgeDie) Roll(gen *Generator, eval *Evaluator) (RollResults, error) {
	return rollDie(d, gen, eval, d.Qty)
}

func (d *FudgeDie) Modifiers() []Modifier {
	return sortedModifiers(d.modifiers, d.modifierKeys)
}

func (d *FudgeDie) AddModifier(m Modifier) {
	addModifier(&d.modifiers, &d.modifierKeys, m)
}
