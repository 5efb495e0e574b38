package dice

// TargetModifier converts each roll into a success (+1), failure (-1),
// or neither (0) by comparing against a success compare point and an
// optional failure compare point.
type TargetModifier struct {
	Success ComparePoint
	Failure *ComparePoint
}

// NewTargetModifier constructs a TargetModifier.
//
// Precondition: success must be a valid ComparePoint.
func NewTargetModifier(success ComparePoint, failure *ComparePoint) *TargetModifier {
	return &TargetModifier{Success: success, Failure: failure}
}

func (m *TargetModifier) Name() string { return "target" }
func (m *TargetModifier) Order() int   { return 8 }

func (m *TargetModifier) Notation() string {
	out := m.Success.Notation()
	if m.Failure != nil {
		out += "f" + m.Failure.Notation()
	}
	return out
}

func (m *TargetModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	for i := range results.Rolls {
		m.apply(&results.Rolls[i])
	}
	return results, nil
}

// RunGroup applies the success/failure comparison to each
// sub-expression's computed value, setting the sub-group's override
// CalculationValue to -1/0/1 exactly as it does per-roll.
func (m *TargetModifier) RunGroup(group *ResultGroup, eval *Evaluator) error {
	for _, sg := range subResultGroups(group) {
		v, err := sg.Value(eval)
		if err != nil {
			return err
		}
		switch {
		case m.Success.Matches(v):
			sg.AddFlag("target-success")
			sg.SetCalculationValue(1)
		case m.Failure != nil && m.Failure.Matches(v):
			sg.AddFlag("target-failure")
			sg.SetCalculationValue(-1)
		default:
			sg.SetCalculationValue(0)
		}
	}
	return nil
}

func (m *TargetModifier) apply(r *RollResult) {
	switch {
	case m.Success.Matches(r.Value):
		r.AddFlag("target-success")
		r.CalculationValue = 1
	case m.Failure != nil && m.Failure.Matches(r.Value):
		r.AddFlag("target-failure")
		r.CalculationValue = -1
	default:
		r.CalculationValue = 0
	}
}
