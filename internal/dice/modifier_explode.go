package dice

// ExplodeModifier re-rolls and appends extra dice whenever a roll
// matches its compare point (default: context.max), optionally
// compounding the chain into a single roll or penetrating (each
// extra roll's value is reduced by 1).
type ExplodeModifier struct {
	ComparePoint *ComparePoint // nil until materialized from context on first Run
	Compound     bool
	Penetrate    bool
}

// NewExplodeModifier constructs an ExplodeModifier. Pass a nil cp to
// default to "= context.max" on first Run.
func NewExplodeModifier(cp *ComparePoint, compound, penetrate bool) *ExplodeModifier {
	return &ExplodeModifier{ComparePoint: cp, Compound: compound, Penetrate: penetrate}
}

func (m *ExplodeModifier) Name() string { return "explode" }

func (m *ExplodeModifier) Order() int { return 3 }

func (m *ExplodeModifier) Notation() string {
	out := "!"
	if m.Compound {
		out += "!"
	}
	if m.Penetrate {
		out += "p"
	}
	if m.ComparePoint != nil {
		out += m.ComparePoint.Notation()
	}
	return out
}

func (m *ExplodeModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	if err := requireTerminating(ctx, "explode"); err != nil {
		return results, err
	}
	cp := m.effectiveComparePoint(ctx)

	var out []RollResult
	for _, original := range results.Rolls {
		chain := []RollResult{original}
		iterations := 0
		for iterations < maxIterations && cp.Matches(chain[len(chain)-1].Value) {
			next := ctx.RollOnce()
			last := len(chain) - 1
			chain[last].AddFlag("explode")
			if m.Penetrate {
				chain[last].AddFlag("penetrate")
				next.Value--
				next.CalculationValue = next.Value
			}
			chain = append(chain, next)
			iterations++
		}

		if m.Compound && len(chain) > 1 {
			out = append(out, m.collapse(chain))
		} else {
			out = append(out, chain...)
		}
	}

	results.Rolls = out
	return results, nil
}

// effectiveComparePoint returns m.ComparePoint, materializing
// "= context.max" the first time Run observes a nil compare point
// (spec §4.4: "materializes its default on first run by querying
// context.min/context.max").
func (m *ExplodeModifier) effectiveComparePoint(ctx *ModifierContext) ComparePoint {
	if m.ComparePoint != nil {
		return *m.ComparePoint
	}
	cp := ComparePoint{Operator: OpEqual, Value: ctx.Max()}
	m.ComparePoint = &cp
	return cp
}

func (m *ExplodeModifier) collapse(chain []RollResult) RollResult {
	var sum float64
	for _, r := range chain {
		sum += r.Value
	}
	out := NewRollResult(chain[0].InitialValue)
	out.Value = sum
	out.CalculationValue = sum
	out.AddFlag("explode")
	out.AddFlag("compound")
	if m.Penetrate {
		out.AddFlag("penetrate")
	}
	return out
}
