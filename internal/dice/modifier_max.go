package dice

import "fmt"

// MaxModifier clamps every roll's value down to at most its bound.
type MaxModifier struct {
	Bound float64
}

// NewMaxModifier constructs a MaxModifier clamping at bound.
func NewMaxModifier(bound float64) *MaxModifier { return &MaxModifier{Bound: bound} }

func (m *MaxModifier) Name() string { return "max" }
func (m *MaxModifier) Order() int   { return 2 }
func (m *MaxModifier) Notation() string {
	return fmt.Sprintf("max%s", formatNumber(m.Bound))
}

func (m *MaxModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	for i := range results.Rolls {
		if results.Rolls[i].Value > m.Bound {
			results.Rolls[i].Value = m.Bound
			results.Rolls[i].CalculationValue = m.Bound
			results.Rolls[i].AddFlag("max")
		}
	}
	return results, nil
}
