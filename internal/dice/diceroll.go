package dice

import "fmt"

// DiceRoll binds a parsed notation to one generator/evaluator pair and
// caches the rolled result tree across Total/Output/Export calls, per
// spec §4.6.
type DiceRoll struct {
	Notation string

	ast       *Notation
	generator *Generator
	evaluator *Evaluator

	result   *ResultGroup
	minTotal *float64
	maxTotal *float64
}

// NewDiceRoll parses notation and returns a DiceRoll ready to Roll.
//
// Precondition: notation must be non-empty; gen and eval must be
// non-nil.
func NewDiceRoll(notation string, gen *Generator, eval *Evaluator) (*DiceRoll, error) {
	if gen == nil || eval == nil {
		return nil, fmt.Errorf("dice: NewDiceRoll: %w: generator and evaluator must not be nil", ErrInvalidArgument)
	}
	ast, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	return &DiceRoll{Notation: notation, ast: ast, generator: gen, evaluator: eval}, nil
}

// Roll samples every die/group in the notation's expression list and
// caches the resulting top-level *ResultGroup.
func (d *DiceRoll) Roll() (*ResultGroup, error) {
	rg, err := rollSegments(d.ast.Segments, d.generator, d.evaluator)
	if err != nil {
		return nil, err
	}
	d.result = rg
	return rg, nil
}

// ensureRolled rolls on first access so Total/Output/Export work
// without requiring callers to call Roll() explicitly first.
func (d *DiceRoll) ensureRolled() (*ResultGroup, error) {
	if d.result != nil {
		return d.result, nil
	}
	return d.Roll()
}

// Total returns the cached roll's arithmetic value, rolling first if
// necessary.
func (d *DiceRoll) Total() (float64, error) {
	rg, err := d.ensureRolled()
	if err != nil {
		return 0, err
	}
	v, err := rg.Value(d.evaluator)
	if err != nil {
		return 0, err
	}
	return round2(v), nil
}

// MinTotal computes the total this notation would produce if every die
// always rolled its minimum, without disturbing any already-cached
// Roll() result or the DiceRoll's own generator engine. The result is
// cached, since a notation's minimum is fixed regardless of how many
// times Roll() is subsequently called, per spec §4.6.
func (d *DiceRoll) MinTotal() (float64, error) {
	if d.minTotal != nil {
		return *d.minTotal, nil
	}
	v, err := d.extremeTotal(NewMinEngine())
	if err != nil {
		return 0, err
	}
	d.minTotal = &v
	return v, nil
}

// MaxTotal computes the total this notation would produce if every die
// always rolled its maximum. Cached for the same reason as MinTotal.
func (d *DiceRoll) MaxTotal() (float64, error) {
	if d.maxTotal != nil {
		return *d.maxTotal, nil
	}
	v, err := d.extremeTotal(NewMaxEngine())
	if err != nil {
		return 0, err
	}
	d.maxTotal = &v
	return v, nil
}

func (d *DiceRoll) extremeTotal(engine Engine) (float64, error) {
	prev, err := d.generator.SwapEngine(engine)
	if err != nil {
		return 0, err
	}
	defer d.generator.SwapEngine(prev)

	rg, err := rollSegments(d.ast.Segments, d.generator, d.evaluator)
	if err != nil {
		return 0, err
	}
	v, err := rg.Value(d.evaluator)
	if err != nil {
		return 0, err
	}
	return round2(v), nil
}

// AverageTotal returns the mean of MinTotal and MaxTotal.
func (d *DiceRoll) AverageTotal() (float64, error) {
	min, err := d.MinTotal()
	if err != nil {
		return 0, err
	}
	max, err := d.MaxTotal()
	if err != nil {
		return 0, err
	}
	return round2((min + max) / 2), nil
}

// Output renders the cached roll as human-readable notation-with-
// values text, rolling first if necessary.
func (d *DiceRoll) Output() (string, error) {
	rg, err := d.ensureRolled()
	if err != nil {
		return "", err
	}
	total, err := rg.Value(d.evaluator)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s = %s", d.Notation, renderResultGroup(rg), formatNumber(round2(total))), nil
}

// rollSegments walks a parsed notation's expression list, replacing
// each Die/RollGroup segment with its rolled form and keeping literal
// tokens and numbers as-is, per spec §4.6.
func rollSegments(segs []Segment, gen *Generator, eval *Evaluator) (*ResultGroup, error) {
	top := NewResultGroup()
	for _, seg := range segs {
		switch s := seg.(type) {
		case DieSegment:
			rolls, err := s.Die.Roll(gen, eval)
			if err != nil {
				return nil, err
			}
			top.Elements = append(top.Elements, RollsElement{Rolls: rolls})
		case GroupSegment:
			rg, err := s.Group.Roll(gen, eval)
			if err != nil {
				return nil, err
			}
			top.Elements = append(top.Elements, GroupElement{Group: rg})
		case LiteralSegment:
			top.Elements = append(top.Elements, OperatorElement(string(s)))
		case NumberSegment:
			top.Elements = append(top.Elements, NumberElement(float64(s)))
		}
	}
	return top, nil
}
