package dice

import "math"

func luaPowf(base, exp float64) float64 {
	return math.Pow(base, exp)
}
