package dice

import (
	"fmt"
)

// MinModifier clamps every roll's value up to at least its bound.
type MinModifier struct {
	Bound float64
}

// NewMinModifier constructs a MinModifier clamping at bound.
func NewMinModifier(bound float64) *MinModifier { return &MinModifier{Bound: bound} }

func (m *MinModifier) Name() string  { return "min" }
func (m *MinModifier) Order() int    { return 1 }
func (m *MinModifier) Notation() string {
	return fmt.Sprintf("min%s", formatNumber(m.Bound))
}

func (m *MinModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	for i := range results.Rolls {
		if results.Rolls[i].Value < m.Bound {
			results.Rolls[i].Value = m.Bound
			results.Rolls[i].CalculationValue = m.Bound
			results.Rolls[i].AddFlag("min")
		}
	}
	return results, nil
}
