package dice

// RollResults is an ordered sequence of RollResult produced by one
// die's roll().
type RollResults struct {
	Rolls []RollResult
	// dieMin/dieMax/dieNotation let modifiers and rendering look up
	// the owning die's context without a hard back-reference.
	dieMin, dieMax float64
	dieNotation    string
}

// Value sums CalculationValue over rolls with UseInTotal set, per
// spec §3.
func (rs RollResults) Value() float64 {
	var total float64
	for _, r := range rs.Rolls {
		if r.UseInTotal {
			total += r.CalculationValue
		}
	}
	return finite(total)
}

// Len returns the number of rolls.
func (rs RollResults) Len() int { return len(rs.Rolls) }
