package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds. Every failure the package returns wraps exactly one of
// these sentinels so callers can discriminate with errors.Is while
// still getting a human-readable, contextual message from the wrapping
// fmt.Errorf call.
var (
	// ErrMissingArgument means a required input was absent: empty
	// notation, a compare point missing its operator or value, and
	// similar "you forgot to pass X" failures.
	ErrMissingArgument = errors.New("dice: missing argument")

	// ErrInvalidArgument means a value was present but malformed: a
	// non-finite compare-point value, a nil engine, and so on.
	ErrInvalidArgument = errors.New("dice: invalid argument")

	// ErrOutOfRange means a numeric constraint was violated: die
	// sides <= 0, qty outside [1, 999], an unrecognized keep/drop end,
	// a fudge die with nonBlanks not in {1, 2}.
	ErrOutOfRange = errors.New("dice: value out of range")

	// ErrInvalidOperator means a compare-point operator token was not
	// one of the recognized operators.
	ErrInvalidOperator = errors.New("dice: invalid compare point operator")

	// ErrInvalidDieAction means a modifier that must terminate (explode,
	// re-roll, unique) was attached to a die whose min equals its max,
	// which would either never match or never stop matching.
	ErrInvalidDieAction = errors.New("dice: invalid action for die bounds")

	// ErrSyntaxError means the notation failed to parse. Errors
	// wrapping this sentinel can usually be unwrapped to a *SyntaxError
	// for position and expected-token detail.
	ErrSyntaxError = errors.New("dice: syntax error")

	// ErrNotationError names the "unusable notation" kind. No function
	// in this package returns it: an empty notation is reported as
	// ErrMissingArgument.
	ErrNotationError = errors.New("dice: invalid notation")

	// ErrDataFormat means an Import payload could not be recognized as
	// a notation object, a JSON encoding of one, or a base64 wrapping
	// of that JSON.
	ErrDataFormat = errors.New("dice: unrecognized data format")
)

// SyntaxError is the concrete error returned by the parser on failure.
// It wraps ErrSyntaxError so errors.Is(err, ErrSyntaxError) succeeds,
// while exposing exact position and expectation detail for tooling
// that wants to render a caret under the offending character.
type SyntaxError struct {
	Notation string   // the full notation string being parsed
	Offset   int      // byte offset of the failure
	Line     int      // 1-based line number
	Column   int      // 1-based column number
	Expected []string // token descriptions that would have been accepted
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return "dice: syntax error at offset " + strconv.Itoa(e.Offset)
	}
	return "dice: syntax error at offset " + strconv.Itoa(e.Offset) +
		", expected one of " + strings.Join(e.Expected, ", ")
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntaxError
}

// newInvalidDieActionError wraps ErrInvalidDieAction with the
// offending modifier's name for context.
func newInvalidDieActionError(modifierName string) error {
	return fmt.Errorf("dice: %s: %w: die min equals max, would not terminate", modifierName, ErrInvalidDieAction)
}

// newOutOfRangeError wraps ErrOutOfRange with the offending
// modifier's name and a human-readable reason.
func newOutOfRangeError(modifierName, reason string) error {
	return fmt.Errorf("dice: %s: %w: %s", modifierName, ErrOutOfRange, reason)
}
