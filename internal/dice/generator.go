package dice

import (
	"fmt"
	"math"
)

// Engine is the pluggable source of raw randomness behind a Generator.
// The Generator calls setRange with the width of the draw it needs and
// then reduces next's result modulo that width, so an engine may
// return any uint64 (the math and Mersenne Twister engines return
// full-width words) or use the hint to return an index already in
// [0, width) (the crypto and max engines do).
//
// Engines are swappable at runtime; swapping while a roll is in
// progress is undefined, matching spec §4.1/§5 — callers that need a
// deterministic min/max total must swap the Engine on a Generator they
// are not concurrently rolling with (see DiceRoll.MinTotal/MaxTotal).
type Engine interface {
	// next returns a pseudo-random integer; the Generator reduces it
	// modulo the width most recently passed to setRange.
	next() uint64
	// setRange tells the engine the width of the next requested draw.
	setRange(n uint64)
	// name identifies the engine for diagnostics/logging.
	name() string
}

// Generator is the contract every dice kind samples through: uniform
// integers on [min, max] and finite reals on [min, max) or [min, max].
type Generator struct {
	engine Engine
}

// NewGenerator builds a Generator backed by engine.
//
// Precondition: engine must be non-nil and implement next/setRange.
// Postcondition: returns a non-nil *Generator, or ErrInvalidArgument if
// engine is nil.
func NewGenerator(engine Engine) (*Generator, error) {
	if engine == nil {
		return nil, fmt.Errorf("dice: NewGenerator: %w: engine must not be nil", ErrInvalidArgument)
	}
	return &Generator{engine: engine}, nil
}

// Engine returns the generator's current engine.
func (g *Generator) Engine() Engine {
	return g.engine
}

// SwapEngine replaces the generator's engine and returns the previous
// one, so callers can restore it afterward (used by DiceRoll.MinTotal
// and MaxTotal to temporarily substitute a deterministic engine).
//
// Precondition: engine must be non-nil.
func (g *Generator) SwapEngine(engine Engine) (Engine, error) {
	if engine == nil {
		return nil, fmt.Errorf("dice: SwapEngine: %w: engine must not be nil", ErrInvalidArgument)
	}
	prev := g.engine
	g.engine = engine
	return prev, nil
}

// Integer returns a uniformly distributed integer in [min, max],
// inclusive on both ends.
//
// Precondition: min <= max.
// Postcondition: returns a value v with min <= v <= max.
func (g *Generator) Integer(min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := uint64(max-min) + 1
	g.engine.setRange(span)
	return min + int(g.engine.next()%span)
}

// Real returns a finite float64 in [min, max), or in [min, max] when
// inclusive is true.
//
// Precondition: min <= max and both are finite.
func (g *Generator) Real(min, max float64, inclusive bool) float64 {
	if max < min {
		min, max = max, min
	}
	const resolution = 1 << 53
	span := uint64(resolution)
	if inclusive {
		// One extra step lets the draw land exactly on the closed upper
		// bound, without biasing the open-interval case.
		span++
	}
	g.engine.setRange(span)
	frac := float64(g.engine.next()%span) / float64(resolution)
	v := min + frac*(max-min)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return min
	}
	return v
}
