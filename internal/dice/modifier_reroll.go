package dice

// RerollModifier replaces a roll's Value (never InitialValue) whenever
// it matches its compare point (default: context.min). With Once set,
// at most a single replacement happens per roll; otherwise it repeats
// until the value no longer matches or the iteration cap is hit.
type RerollModifier struct {
	ComparePoint *ComparePoint
	Once         bool
}

// NewRerollModifier constructs a RerollModifier. Pass a nil cp to
// default to "= context.min" on first Run.
func NewRerollModifier(cp *ComparePoint, once bool) *RerollModifier {
	return &RerollModifier{ComparePoint: cp, Once: once}
}

func (m *RerollModifier) Name() string { return "re-roll" }
func (m *RerollModifier) Order() int   { return 4 }

func (m *RerollModifier) flag() string {
	if m.Once {
		return "re-roll-once"
	}
	return "re-roll"
}

func (m *RerollModifier) Notation() string {
	out := "r"
	if m.Once {
		out += "o"
	}
	if m.ComparePoint != nil {
		out += m.ComparePoint.Notation()
	}
	return out
}

func (m *RerollModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	if err := requireTerminating(ctx, "re-roll"); err != nil {
		return results, err
	}
	cp := m.effectiveComparePoint(ctx)
	flag := m.flag()

	for i := range results.Rolls {
		iterations := 0
		for cp.Matches(results.Rolls[i].Value) {
			if m.Once && iterations >= 1 {
				break
			}
			if iterations >= maxIterations {
				break
			}
			next := ctx.RollOnce()
			results.Rolls[i].Value = next.Value
			results.Rolls[i].CalculationValue = next.Value
			results.Rolls[i].AddFlag(flag)
			iterations++
			if m.Once {
				break
			}
		}
	}
	return results, nil
}

func (m *RerollModifier) effectiveComparePoint(ctx *ModifierContext) ComparePoint {
	if m.ComparePoint != nil {
		return *m.ComparePoint
	}
	cp := ComparePoint{Operator: OpEqual, Value: ctx.Min()}
	m.ComparePoint = &cp
	return cp
}
