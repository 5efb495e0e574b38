package dice

import (
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/forgeweave/diceroller/internal/scripting"
)

// evaluatorInstructionLimit bounds how many Lua opcodes a single
// arithmetic evaluation may spend, mirroring the teacher's scripting
// sandbox's deterministic instruction cap so a pathological expression
// (deeply nested parens, repeated pow calls) cannot hang a roll.
const evaluatorInstructionLimit = 10_000

// Evaluator evaluates the arithmetic expressions produced by walking a
// parsed notation's AST: standard operator precedence, "**" exponent,
// parentheses, and the math functions spec §4.6 lists. It is
// implemented as a sandboxed gopher-lua VM (base, table, string and
// math libraries, with dangerous globals removed), directly reusing the teacher's scripting-sandbox approach
// (internal/scripting/sandbox.go) for a new purpose: Lua already
// implements the needed grammar and math functions correctly, so the
// evaluator does not hand-rolled precedence-climb.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator. Evaluator holds no
// state between calls; each Evaluate call gets a fresh sandboxed VM so
// concurrent evaluations never interfere, matching spec §5's
// single-threaded-per-evaluation model without needing a lock.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// mathFunctionNames are the functions spec §4.6 requires; each must be
// reachable as a bare identifier in the expression (not a Lua
// math.xxx-qualified call), so the sandbox aliases math.* into the
// globals the expression string can call directly.
var mathFunctionNames = []string{
	"abs", "ceil", "cos", "exp", "floor", "log", "round", "sign",
	"sin", "sqrt", "tan", "pow", "max", "min",
}

// Evaluate computes the arithmetic value of expr: "**"/"^" exponent,
// "* / %", "+ -", parentheses, and the math functions above.
//
// Precondition: expr must be non-empty arithmetic text.
// Postcondition: returns a finite float64, or ErrInvalidArgument if
// expr does not evaluate to a single number.
func (e *Evaluator) Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, fmt.Errorf("dice: Evaluate: %w: expression must not be empty", ErrInvalidArgument)
	}
	canon := canonicalizeExponent(expr)

	L := newEvaluatorState()
	defer L.Close()

	chunk := "return (" + canon + ")"
	fn, err := L.LoadString(chunk)
	if err != nil {
		return 0, fmt.Errorf("dice: Evaluate: %w: %v", ErrInvalidArgument, err)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		return 0, fmt.Errorf("dice: Evaluate: %w: %v", ErrInvalidArgument, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	num, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("dice: Evaluate: %w: expression %q did not evaluate to a number", ErrInvalidArgument, expr)
	}
	return finite(float64(num)), nil
}

// canonicalizeExponent rewrites "**" to Lua's native "^" exponent
// operator; a "^" already in expr is left as it is. The AST-level
// notation always stores "**" (the parser turns "^" into "**"), and
// here it is translated to the single "^" Lua expects.
func canonicalizeExponent(expr string) string {
	return strings.ReplaceAll(expr, "**", "^")
}

// newEvaluatorState returns the teacher's sandboxed gopher-lua VM
// (internal/scripting.NewSandboxedState), with the math library's
// functions additionally aliased as bare globals so expressions can
// call "floor(x)" instead of "math.floor(x)".
func newEvaluatorState() *lua.LState {
	L := scripting.NewSandboxedState(evaluatorInstructionLimit)
	L.SetGlobal("print", lua.LNil)

	mathTable, ok := L.GetGlobal("math").(*lua.LTable)
	if ok {
		for _, fn := range mathFunctionNames {
			switch fn {
			case "round":
				// Lua's math library has no "round"; luaRound rounds
				// half away from zero.
				L.SetGlobal("round", L.NewFunction(luaRound))
			case "sign":
				L.SetGlobal("sign", L.NewFunction(luaSign))
			case "pow":
				L.SetGlobal("pow", L.NewFunction(luaPow))
			default:
				if v := mathTable.RawGetString(fn); v != lua.LNil {
					L.SetGlobal(fn, v)
				}
			}
		}
	}

	return L
}

func luaRound(L *lua.LState) int {
	x := float64(L.CheckNumber(1))
	var r float64
	if x >= 0 {
		r = float64(int64(x + 0.5))
	} else {
		r = float64(int64(x - 0.5))
	}
	L.Push(lua.LNumber(r))
	return 1
}

func luaSign(L *lua.LState) int {
	x := float64(L.CheckNumber(1))
	switch {
	case x > 0:
		L.Push(lua.LNumber(1))
	case x < 0:
		L.Push(lua.LNumber(-1))
	default:
		L.Push(lua.LNumber(0))
	}
	return 1
}

func luaPow(L *lua.LState) int {
	base := float64(L.CheckNumber(1))
	exp := float64(L.CheckNumber(2))
	L.Push(lua.LNumber(luaPowf(base, exp)))
	return 1
}
