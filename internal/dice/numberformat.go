package dice

import "strconv"

// formatNumber renders a float64 the way notation expects numeric
// literals to look: integral values with no decimal point, fractional
// values with trailing zeros stripped.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// round2 rounds v to 2 decimal places and strips trailing zeros, per
// spec §4.6/§8 invariant 10 (total == round2(ResultGroup.value)).
func round2(v float64) float64 {
	const scale = 100
	rounded := float64(int64(v*scale+sign(v)*0.5)) / scale
	return rounded
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
