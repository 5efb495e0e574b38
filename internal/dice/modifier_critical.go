package dice

// CriticalSuccessModifier flags rolls matching its compare point
// (default: context.max) without altering their value or UseInTotal.
type CriticalSuccessModifier struct {
	ComparePoint *ComparePoint
}

// NewCriticalSuccessModifier constructs a CriticalSuccessModifier.
func NewCriticalSuccessModifier(cp *ComparePoint) *CriticalSuccessModifier {
	return &CriticalSuccessModifier{ComparePoint: cp}
}

func (m *CriticalSuccessModifier) Name() string { return "critical-success" }
func (m *CriticalSuccessModifier) Order() int   { return 9 }

func (m *CriticalSuccessModifier) Notation() string {
	out := "cs"
	if m.ComparePoint != nil {
		out += m.ComparePoint.Notation()
	}
	return out
}

func (m *CriticalSuccessModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	cp := m.effectiveComparePoint(ctx)
	for i := range results.Rolls {
		if cp.Matches(results.Rolls[i].Value) {
			results.Rolls[i].AddFlag("critical-success")
		}
	}
	return results, nil
}

func (m *CriticalSuccessModifier) effectiveComparePoint(ctx *ModifierContext) ComparePoint {
	if m.ComparePoint != nil {
		return *m.ComparePoint
	}
	cp := ComparePoint{Operator: OpEqual, Value: ctx.Max()}
	m.ComparePoint = &cp
	return cp
}

// RunGroup flags each sub-expression whose computed value matches the
// compare point, defaulting to the highest value seen among the
// group's sub-expressions when no compare point was supplied.
func (m *CriticalSuccessModifier) RunGroup(group *ResultGroup, eval *Evaluator) error {
	subs := subResultGroups(group)
	values, err := subGroupValues(subs, eval)
	if err != nil {
		return err
	}
	cp := m.ComparePoint
	if cp == nil {
		max := groupMax(values)
		cp = &ComparePoint{Operator: OpEqual, Value: max}
	}
	for i, v := range values {
		if cp.Matches(v) {
			subs[i].AddFlag("critical-success")
		}
	}
	return nil
}

// CriticalFailureModifier flags rolls matching its compare point
// (default: context.min) without altering their value or UseInTotal.
type CriticalFailureModifier struct {
	ComparePoint *ComparePoint
}

// NewCriticalFailureModifier constructs a CriticalFailureModifier.
func NewCriticalFailureModifier(cp *ComparePoint) *CriticalFailureModifier {
	return &CriticalFailureModifier{ComparePoint: cp}
}

func (m *CriticalFailureModifier) Name() string { return "critical-failure" }
func (m *CriticalFailureModifier) Order() int   { return 10 }

func (m *CriticalFailureModifier) Notation() string {
	out := "cf"
	if m.ComparePoint != nil {
		out += m.ComparePoint.Notation()
	}
	return out
}

func (m *CriticalFailureModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	cp := m.effectiveComparePoint(ctx)
	for i := range results.Rolls {
		if cp.Matches(results.Rolls[i].Value) {
			results.Rolls[i].AddFlag("critical-failure")
		}
	}
	return results, nil
}

func (m *CriticalFailureModifier) effectiveComparePoint(ctx *ModifierContext) ComparePoint {
	if m.ComparePoint != nil {
		return *m.ComparePoint
	}
	cp := ComparePoint{Operator: OpEqual, Value: ctx.Min()}
	m.ComparePoint = &cp
	return cp
}

// RunGroup flags each sub-expression whose computed value matches the
// compare point, defaulting to the lowest value seen among the
// group's sub-expressions when no compare point was supplied.
func (m *CriticalFailureModifier) RunGroup(group *ResultGroup, eval *Evaluator) error {
	subs := subResultGroups(group)
	values, err := subGroupValues(subs, eval)
	if err != nil {
		return err
	}
	cp := m.ComparePoint
	if cp == nil {
		min := groupMin(values)
		cp = &ComparePoint{Operator: OpEqual, Value: min}
	}
	for i, v := range values {
		if cp.Matches(v) {
			subs[i].AddFlag("critical-failure")
		}
	}
	return nil
}

func subGroupValues(subs []*ResultGroup, eval *Evaluator) ([]float64, error) {
	values := make([]float64, len(subs))
	for i, sg := range subs {
		v, err := sg.Value(eval)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func groupMax(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func groupMin(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
