package dice

// Segment is one pre-roll element of a parsed notation's expression
// list: a literal passthrough token (operators, parens, math-function
// call syntax, commas), a literal number, a Die to sample, or a
// RollGroup to sample. rollSegments walks a []Segment, replacing each
// Die/RollGroup with its rolled RollsElement/GroupElement and keeping
// literal tokens and numbers verbatim, to build the top-level
// ResultGroup per spec §4.6.
type Segment interface {
	isSegment()
}

// LiteralSegment is passthrough notation text: an arithmetic operator,
// a parenthesis, a math-function name plus its opening parenthesis, or
// a comma separating function arguments. It is never itself rolled;
// it is concatenated verbatim into the arithmetic expression string
// the Evaluator ultimately evaluates.
type LiteralSegment string

func (LiteralSegment) isSegment() {}

// NumberSegment is a literal numeric operand.
type NumberSegment float64

func (NumberSegment) isSegment() {}

// DieSegment wraps a Die to be rolled in place.
type DieSegment struct{ Die Die }

func (DieSegment) isSegment() {}

// GroupSegment wraps a *RollGroup to be rolled in place.
type GroupSegment struct{ Group *RollGroup }

func (GroupSegment) isSegment() {}

// Notation is the parsed form of a notation string: its expression
// list plus the raw text it was parsed from.
type Notation struct {
	Raw      string
	Segments []Segment
}
