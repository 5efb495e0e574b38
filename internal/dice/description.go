package dice

import "fmt"

// DescriptionType distinguishes a single-line description ("//", "#")
// from a multi-line one ("/* */", "[ ]").
type DescriptionType string

const (
	DescriptionInline    DescriptionType = "inline"
	DescriptionMultiline DescriptionType = "multiline"
)

// descriptionStyle records which literal delimiter produced a
// Description, so Notation() can round-trip it in the same style
// spec §8 invariant 8 requires.
type descriptionStyle int

const (
	styleSlashSlash descriptionStyle = iota
	styleHash
	styleSlashStar
	styleBracket
)

// Description is pure metadata attached to a die or group.
//
// Precondition: Text must be non-empty.
type Description struct {
	Text  string
	Type  DescriptionType
	style descriptionStyle
}

// NewDescription constructs a Description.
//
// Precondition: text must be non-empty.
func NewDescription(text string, typ DescriptionType) (*Description, error) {
	if text == "" {
		return nil, fmt.Errorf("dice: NewDescription: %w: text must not be empty", ErrMissingArgument)
	}
	return &Description{Text: text, Type: typ}, nil
}

func (d *Description) render() string {
	switch d.style {
	case styleHash:
		return "#" + d.Text
	case styleSlashStar:
		return "/*" + d.Text + "*/"
	case styleBracket:
		return "[" + d.Text + "]"
	default:
		return "//" + d.Text
	}
}
