package dice

// UniqueModifier re-rolls duplicate values, walking left to right. The
// first roll is never re-rolled. With a compare point set, only
// duplicates whose value also matches the compare point are eligible;
// without one, every duplicate is eligible (spec §9 open question).
type UniqueModifier struct {
	ComparePoint *ComparePoint
	Once         bool
}

// NewUniqueModifier constructs a UniqueModifier.
func NewUniqueModifier(cp *ComparePoint, once bool) *UniqueModifier {
	return &UniqueModifier{ComparePoint: cp, Once: once}
}

func (m *UniqueModifier) Name() string { return "unique" }
func (m *UniqueModifier) Order() int   { return 5 }

func (m *UniqueModifier) flag() string {
	if m.Once {
		return "unique-once"
	}
	return "unique"
}

func (m *UniqueModifier) Notation() string {
	out := "u"
	if m.Once {
		out += "o"
	}
	if m.ComparePoint != nil {
		out += m.ComparePoint.Notation()
	}
	return out
}

func (m *UniqueModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	if err := requireTerminating(ctx, "unique"); err != nil {
		return results, err
	}
	flag := m.flag()

	for i := 1; i < len(results.Rolls); i++ {
		iterations := 0
		for m.eligible(results.Rolls[i].Value) && isDuplicate(results.Rolls, i) {
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

func (m *UniqueModifier) eligible(v float64) bool {
	if m.ComparePoint == nil {
		return true
	}
	return m.ComparePoint.Matches(v)
}

func isDuplicate(rolls []RollResult, idx int) bool {
	for j := 0; j < idx; j++ {
		if rolls[j].Value == rolls[idx].Value {
			return true
		}
	}
	return false
}
