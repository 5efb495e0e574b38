package dice

import (
	"math"

	"github.com/google/uuid"
)

// modifierFlagGlyph maps a modifier flag name to the glyph used when
// rendering modifierFlags strings per spec §6.
var modifierFlagGlyph = map[string]string{
	"compound":          "!",
	"explode":           "!",
	"critical-failure":  "__",
	"critical-success":  "**",
	"drop":              "d",
	"max":               "v",
	"min":               "^",
	"penetrate":         "p",
	"re-roll":           "r",
	"re-roll-once":      "ro",
	"target-failure":    "_",
	"target-success":    "*",
	"unique":            "u",
	"unique-once":       "uo",
}

// RollResult is a single sampled die value plus everything a modifier
// chain has done to it.
//
// Invariant: InitialValue, Value, and CalculationValue are always
// finite.
type RollResult struct {
	// ID is informational only, for log cross-referencing; excluded
	// from serialization.
	ID uuid.UUID

	// InitialValue is the raw sampled integer, never mutated after
	// rollOnce.
	InitialValue float64
	// Value defaults to InitialValue and may be overwritten by min,
	// max, re-roll, or compound explode.
	Value float64
	// CalculationValue defaults to Value and is overwritten only by
	// the target modifier (to -1, 0, or 1).
	CalculationValue float64

	// Modifiers is the ordered set of flag names this roll carries.
	// Order is insertion order (first modifier to touch the roll
	// first), matching how modifierFlags is rendered.
	Modifiers []string

	// UseInTotal controls whether this roll's CalculationValue is
	// included when RollResults.Value sums its rolls.
	UseInTotal bool

	// dieMin/dieMax are not set by any code in this package and stay
	// zero.
	dieMin, dieMax float64
}

// NewRollResult creates a RollResult with InitialValue and Value both
// set to v, CalculationValue defaulted to Value, and UseInTotal true.
func NewRollResult(v float64) RollResult {
	return RollResult{
		ID:               uuid.New(),
		InitialValue:     v,
		Value:            v,
		CalculationValue: v,
		UseInTotal:       true,
	}
}

// HasFlag reports whether name is present in Modifiers.
func (r RollResult) HasFlag(name string) bool {
	for _, m := range r.Modifiers {
		if m == name {
			return true
		}
	}
	return false
}

// AddFlag appends name to Modifiers if not already present.
func (r *RollResult) AddFlag(name string) {
	if !r.HasFlag(name) {
		r.Modifiers = append(r.Modifiers, name)
	}
}

// modifierFlags renders the glyph string for the current flag set, in
// insertion order.
func (r RollResult) modifierFlags() string {
	var out string
	for _, m := range r.Modifiers {
		out += modifierFlagGlyph[m]
	}
	return out
}

// finite guards against a modifier accidentally producing a
// non-finite value; callers should never see NaN/Inf escape the
// package.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
