package dice

// maxIterations bounds how many times explode/re-roll/unique may loop
// on a single die, per spec §3/§5. Hitting the cap silently stops
// producing further effects; it is never an error (spec §7).
const maxIterations = 1000

// ModifierContext is what a Modifier.Run call needs beyond the
// RollResults it is mutating: the owning die or group (for Min/Max
// defaults and re-rolling), the Generator to draw new samples from,
// and the Evaluator for modifiers that need arithmetic (none do today,
// but Sorting on a ResultGroup recurses through nested groups that do).
type ModifierContext struct {
	Die       Die          // nil when the context is a RollGroup
	Group     *RollGroup   // nil when the context is a Die
	Generator *Generator
	Evaluator *Evaluator
}

// Min returns the context's lower bound.
func (c *ModifierContext) Min() float64 {
	if c.Die != nil {
		return c.Die.Min()
	}
	return 0
}

// Max returns the context's upper bound.
func (c *ModifierContext) Max() float64 {
	if c.Die != nil {
		return c.Die.Max()
	}
	return 0
}

// RollOnce draws one more raw sample from the context's die.
//
// Precondition: c.Die must be non-nil (RollGroups never explode/re-roll).
func (c *ModifierContext) RollOnce() RollResult {
	return c.Die.RollOnce(c.Generator)
}

// Modifier is the polymorphic contract every modifier kind satisfies:
// a name (for the map key and flag), a static Order controlling
// execution sequence, notation rendering, and the Run transform.
type Modifier interface {
	// Name is the modifier's identity and its default flag name.
	Name() string
	// Order is the fixed execution-sequence number from spec §3's
	// modifier table; ties preserve insertion order.
	Order() int
	// Notation renders this modifier's notation suffix, e.g. "!", "kh3".
	Notation() string
	// Run applies the modifier to results and returns the mutated
	// container.
	Run(results RollResults, ctx *ModifierContext) (RollResults, error)
}

// GroupModifier is the subset of modifiers that can attach to a
// RollGroup's own modifier map and act on its rolled *ResultGroup
// (keep, drop, sorting, target, critical-success, critical-failure).
// Min/max/explode/re-roll/unique are meaningless at group granularity
// and never implement this interface.
type GroupModifier interface {
	Name() string
	Order() int
	Notation() string
	RunGroup(group *ResultGroup, eval *Evaluator) error
}

// requireTerminating fails with ErrInvalidDieAction when min == max,
// since explode/re-roll/unique would either never match or never stop
// matching on such a die.
func requireTerminating(ctx *ModifierContext, modifierName string) error {
	if ctx.Min() == ctx.Max() {
		return newInvalidDieActionError(modifierName)
	}
	return nil
}
