package dice

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// rollResultJSON is RollResult's wire shape: ID is deliberately
// omitted (it is informational only, for log cross-referencing).
type rollResultJSON struct {
	InitialValue     float64  `json:"initialValue"`
	Value            float64  `json:"value"`
	CalculationValue float64  `json:"calculationValue"`
	Modifiers        []string `json:"modifiers,omitempty"`
	UseInTotal       bool     `json:"useInTotal"`
}

// MarshalJSON renders RollResult per spec §6.
func (r RollResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(rollResultJSON{
		InitialValue:     r.InitialValue,
		Value:            r.Value,
		CalculationValue: r.CalculationValue,
		Modifiers:        r.Modifiers,
		UseInTotal:       r.UseInTotal,
	})
}

type rollResultsJSON struct {
	Rolls []RollResult `json:"rolls"`
	Value float64      `json:"value"`
}

// MarshalJSON renders RollResults per spec §6.
func (rs RollResults) MarshalJSON() ([]byte, error) {
	return json.Marshal(rollResultsJSON{Rolls: rs.Rolls, Value: rs.Value()})
}

// resultGroupExport and elementExport are the wire shapes for
// *ResultGroup, built explicitly (rather than via json.Marshaler)
// because computing "value" requires an *Evaluator that ResultGroup
// itself does not carry.
type resultGroupExport struct {
	Elements    []elementExport `json:"elements"`
	Modifiers   []string        `json:"modifiers,omitempty"`
	IsRollGroup bool            `json:"isRollGroup"`
	UseInTotal  bool            `json:"useInTotal"`
	Value       float64         `json:"value"`
}

type elementExport struct {
	Type     string             `json:"type"`
	Operator string             `json:"operator,omitempty"`
	Number   *float64           `json:"number,omitempty"`
	Group    *resultGroupExport `json:"group,omitempty"`
	Rolls    *RollResults       `json:"rolls,omitempty"`
}

func buildResultGroupExport(rg *ResultGroup, eval *Evaluator) (*resultGroupExport, error) {
	out := &resultGroupExport{
		Modifiers:   rg.Modifiers,
		IsRollGroup: rg.IsRollGroup,
		UseInTotal:  rg.UseInTotal,
	}
	for _, el := range rg.Elements {
		var ee elementExport
		switch v := el.(type) {
		case OperatorElement:
			ee.Type = "operator"
			ee.Operator = string(v)
		case NumberElement:
			ee.Type = "number"
			n := float64(v)
			ee.Number = &n
		case RollsElement:
			ee.Type = "rolls"
			r := v.Rolls
			ee.Rolls = &r
		case GroupElement:
			ee.Type = "group"
			sub, err := buildResultGroupExport(v.Group, eval)
			if err != nil {
				return nil, err
			}
			ee.Group = sub
		}
		out.Elements = append(out.Elements, ee)
	}
	v, err := rg.Value(eval)
	if err != nil {
		return nil, err
	}
	out.Value = v
	return out, nil
}

func rebuildResultGroupFromExport(exp *resultGroupExport) *ResultGroup {
	rg := NewResultGroup()
	rg.Modifiers = append([]string{}, exp.Modifiers...)
	rg.IsRollGroup = exp.IsRollGroup
	rg.UseInTotal = exp.UseInTotal
	for _, ee := range exp.Elements {
		switch ee.Type {
		case "operator":
			rg.Elements = append(rg.Elements, OperatorElement(ee.Operator))
		case "number":
			if ee.Number != nil {
				rg.Elements = append(rg.Elements, NumberElement(*ee.Number))
			}
		case "rolls":
			if ee.Rolls != nil {
				rg.Elements = append(rg.Elements, RollsElement{Rolls: *ee.Rolls})
			}
		case "group":
			if ee.Group != nil {
				rg.Elements = append(rg.Elements, GroupElement{Group: rebuildResultGroupFromExport(ee.Group)})
			}
		}
	}
	return rg
}

type diceRollExport struct {
	Notation string             `json:"notation"`
	Rolls    *resultGroupExport `json:"rolls"`
	Total    float64            `json:"total"`
	Output   string             `json:"output"`
}

// Export serializes the cached roll (rolling first if necessary) to
// JSON, per spec §6's supplemental export surface.
func (d *DiceRoll) Export() ([]byte, error) {
	rg, err := d.ensureRolled()
	if err != nil {
		return nil, err
	}
	exp, err := buildResultGroupExport(rg, d.evaluator)
	if err != nil {
		return nil, err
	}
	output, err := d.Output()
	if err != nil {
		return nil, err
	}
	return json.Marshal(diceRollExport{Notation: d.Notation, Rolls: exp, Total: round2(exp.Value), Output: output})
}

// ExportBase64 returns Export's JSON, base64-encoded.
func (d *DiceRoll) ExportBase64() (string, error) {
	data, err := d.Export()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Import reconstructs a DiceRoll from data, which may be raw notation
// text, a JSON export, or a base64-wrapped JSON export. When data
// carries a serialized result tree, the returned DiceRoll's cached
// result is rebuilt from it directly rather than re-rolled, so Total/
// Output reproduce the original roll exactly.
//
// Precondition: gen and eval must be non-nil.
// Postcondition: returns a usable *DiceRoll, or ErrDataFormat if data
// is not recognizable in any of the three forms.
func Import(data []byte, gen *Generator, eval *Evaluator) (*DiceRoll, error) {
	if gen == nil || eval == nil {
		return nil, fmt.Errorf("dice: Import: %w: generator and evaluator must not be nil", ErrInvalidArgument)
	}

	payload := data
	if decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data))); err == nil {
		payload = decoded
	}

	var exp diceRollExport
	if err := json.Unmarshal(payload, &exp); err == nil && exp.Notation != "" {
		d, err := NewDiceRoll(exp.Notation, gen, eval)
		if err != nil {
			return nil, err
		}
		if exp.Rolls != nil {
			d.result = rebuildResultGroupFromExport(exp.Rolls)
		}
		return d, nil
	}

	notation := strings.TrimSpace(string(data))
	if notation == "" {
		return nil, fmt.Errorf("dice: Import: %w: data is neither a notation string nor a recognized export", ErrDataFormat)
	}
	d, err := NewDiceRoll(notation, gen, eval)
	if err != nil {
		return nil, fmt.Errorf("dice: Import: %w: data is neither a recognized export nor valid notation: %v", ErrDataFormat, err)
	}
	return d, nil
}

// renderResultGroup renders rg as notation-with-values text, per
// spec §6: dice render as "[v1f1, v2f2, ...]", brace groups render as
// "{sub1, sub2}" with their own modifier glyphs appended.
func renderResultGroup(rg *ResultGroup) string {
	if rg.IsRollGroup {
		var subs []string
		for _, el := range rg.Elements {
			if ge, ok := el.(GroupElement); ok {
				subs = append(subs, renderElements(ge.Group.Elements)+flagsGlyph(ge.Group.Modifiers))
			}
		}
		return "{" + strings.Join(subs, ", ") + "}" + flagsGlyph(rg.Modifiers)
	}
	return renderElements(rg.Elements)
}

func renderElements(elements []ResultElement) string {
	var out string
	for _, el := range elements {
		switch v := el.(type) {
		case OperatorElement:
			out += string(v)
		case NumberElement:
			out += formatNumber(float64(v))
		case RollsElement:
			out += renderRolls(v.Rolls)
		case GroupElement:
			out += renderResultGroup(v.Group)
		}
	}
	return out
}

func renderRolls(rs RollResults) string {
	parts := make([]string, len(rs.Rolls))
	for i, r := range rs.Rolls {
		parts[i] = formatNumber(r.Value) + r.modifierFlags()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func flagsGlyph(flags []string) string {
	var out string
	for _, f := range flags {
		out += modifierFlagGlyph[f]
	}
	return out
}
