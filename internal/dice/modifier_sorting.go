package dice

import "sort"

// Direction controls SortingModifier's ordering.
type Direction string

const (
	Ascending  Direction = "a"
	Descending Direction = "d"
)

// SortingModifier stable-sorts a die's rolls by Value. For a
// ResultGroup, sorting recurses into nested ResultGroup/RollResults
// children instead (see RunGroup).
type SortingModifier struct {
	DirectionValue Direction
}

// NewSortingModifier constructs a SortingModifier.
//
// Precondition: direction must be "a" or "d".
func NewSortingModifier(direction Direction) (*SortingModifier, error) {
	if direction != Ascending && direction != Descending {
		return nil, newOutOfRangeError("sorting", "direction must be \"a\" or \"d\"")
	}
	return &SortingModifier{DirectionValue: direction}, nil
}

func (m *SortingModifier) Name() string     { return "sort" }
func (m *SortingModifier) Order() int       { return 11 }
func (m *SortingModifier) Notation() string { return "s" + string(m.DirectionValue) }

func (m *SortingModifier) Run(results RollResults, ctx *ModifierContext) (RollResults, error) {
	sortRolls(results.Rolls, m.DirectionValue)
	return results, nil
}

// RunGroup recurses into group's nested ResultGroup/RollResults
// children, sorting each in place.
func (m *SortingModifier) RunGroup(group *ResultGroup, eval *Evaluator) error {
	for _, el := range group.Elements {
		switch v := el.(type) {
		case RollsElement:
			sortRolls(v.Rolls.Rolls, m.DirectionValue)
		case GroupElement:
			if err := m.RunGroup(v.Group, eval); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortRolls(rolls []RollResult, dir Direction) {
	sort.SliceStable(rolls, func(i, j int) bool {
		if dir == Descending {
			return rolls[i].Value > rolls[j].Value
		}
		return rolls[i].Value < rolls[j].Value
	})
}
