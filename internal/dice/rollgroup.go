package dice

// subExpression is one comma-separated sub-expression inside a brace
// group: a flat sequence of dice, operator tokens, and numbers, in
// source order.
type subExpression struct {
	elements []subExprElement
}

// subExprElement is one token of a subExpression: a Die, an operator,
// or a literal number.
type subExprElement struct {
	die      Die
	operator string
	number   *float64
	hasDie   bool
	hasOp    bool
}

// RollGroup is a brace-group ({expr, expr, ...}) with its own ordered
// modifier map, per spec §3/§4.5.
type RollGroup struct {
	SubExpressions []subExpression
	Description    *Description

	modifiers    map[string]GroupModifier
	modifierKeys []string
}

// NewRollGroup returns an empty RollGroup.
func NewRollGroup() *RollGroup {
	return &RollGroup{modifiers: make(map[string]GroupModifier)}
}

// AddSubExpression appends a new, empty sub-expression and returns its
// index so callers can append elements to it.
func (g *RollGroup) AddSubExpression() int {
	g.SubExpressions = append(g.SubExpressions, subExpression{})
	return len(g.SubExpressions) - 1
}

// AppendDie appends die to sub-expression idx.
func (g *RollGroup) AppendDie(idx int, die Die) {
	g.SubExpressions[idx].elements = append(g.SubExpressions[idx].elements, subExprElement{die: die, hasDie: true})
}

// AppendOperator appends an operator token to sub-expression idx.
func (g *RollGroup) AppendOperator(idx int, op string) {
	g.SubExpressions[idx].elements = append(g.SubExpressions[idx].elements, subExprElement{operator: op, hasOp: true})
}

// AppendNumber appends a literal number to sub-expression idx.
func (g *RollGroup) AppendNumber(idx int, v float64) {
	g.SubExpressions[idx].elements = append(g.SubExpressions[idx].elements, subExprElement{number: &v})
}

// Modifiers returns the group's modifiers sorted by Order ascending,
// ties broken by insertion order.
func (g *RollGroup) Modifiers() []GroupModifier {
	out := make([]GroupModifier, 0, len(g.modifierKeys))
	for _, k := range g.modifierKeys {
		if m, ok := g.modifiers[k]; ok {
			out = append(out, m)
		}
	}
	sortGroupModifiers(out)
	return out
}

// AddModifier registers m, keyed by its Name.
func (g *RollGroup) AddModifier(m GroupModifier) {
	name := m.Name()
	if _, exists := g.modifiers[name]; !exists {
		g.modifierKeys = append(g.modifierKeys, name)
	}
	g.modifiers[name] = m
}

// Roll samples each sub-expression into a nested *ResultGroup, wraps
// them in an outer ResultGroup with IsRollGroup=true, then runs the
// group's own modifiers over it.
func (g *RollGroup) Roll(gen *Generator, eval *Evaluator) (*ResultGroup, error) {
	outer := NewResultGroup()
	outer.IsRollGroup = true

	for _, sub := range g.SubExpressions {
		sg := NewResultGroup()
		for _, el := range sub.elements {
			switch {
			case el.hasDie:
				rolls, err := el.die.Roll(gen, eval)
				if err != nil {
					return nil, err
				}
				sg.Elements = append(sg.Elements, RollsElement{Rolls: rolls})
			case el.hasOp:
				sg.Elements = append(sg.Elements, OperatorElement(el.operator))
			case el.number != nil:
				sg.Elements = append(sg.Elements, NumberElement(*el.number))
			}
		}
		outer.Elements = append(outer.Elements, GroupElement{Group: sg})
	}

	for _, m := range g.Modifiers() {
		if err := m.RunGroup(outer, eval); err != nil {
			return nil, err
		}
	}
	return outer, nil
}

// Notation renders "{sub1, sub2, ...}Mod1Mod2...".
func (g *RollGroup) Notation() string {
	out := "{"
	for i, sub := range g.SubExpressions {
		if i > 0 {
			out += ", "
		}
		out += sub.notation()
	}
	out += "}"
	for _, m := range g.Modifiers() {
		out += m.Notation()
	}
	if g.Description != nil {
		out += g.Description.render()
	}
	return out
}

func (s subExpression) notation() string {
	var out string
	for _, el := range s.elements {
		switch {
		case el.hasDie:
			out += el.die.Notation()
		case el.hasOp:
			out += el.operator
		case el.number != nil:
			out += formatNumber(*el.number)
		}
	}
	return out
}

func sortGroupModifiers(mods []GroupModifier) {
	// insertion-stable sort by Order, mirroring sortedModifiers.
	for i := 1; i < len(mods); i++ {
		for j := i; j > 0 && mods[j].Order() < mods[j-1].Order(); j-- {
			mods[j], mods[j-1] = mods[j-1], mods[j]
		}
	}
}
