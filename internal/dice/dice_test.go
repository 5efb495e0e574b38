package dice_test

import (
	"strconv"
	"testing"

	"github.com/forgeweave/diceroller/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func newGen(t *testing.T, engine dice.Engine) *dice.Generator {
	t.Helper()
	gen, err := dice.NewGenerator(engine)
	require.NoError(t, err)
	return gen
}

func TestDiceRoll_SimpleArithmetic(t *testing.T) {
	// "2d6+3" with faces 4,5 (sequence values 3,4 -> +1 each) totals 12.
	gen := newGen(t, dice.NewSequenceEngine(3, 4))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6+3", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(12), total)
}

func TestDiceRoll_Output_ContainsNotationAndFaces(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(3, 4))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6+3", gen, eval)
	require.NoError(t, err)

	out, err := d.Output()
	require.NoError(t, err)
	assert.Contains(t, out, "2d6+3")
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "12")
}

func TestDiceRoll_KeepHighest(t *testing.T) {
	// 4d6, faces 2,6,4,1 (seq 1,5,3,0); kh3 keeps 6,4,2 = 12.
	gen := newGen(t, dice.NewSequenceEngine(1, 5, 3, 0))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("4d6kh3", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(12), total)
}

func TestDiceRoll_DropLowest(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(1, 5, 3, 0))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("4d6dl1", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(12), total)
}

func TestDiceRoll_Explode(t *testing.T) {
	// 1d6! with faces 6,6,3 (seq 5,5,2) -> chain [6,6,3] totals 15.
	gen := newGen(t, dice.NewSequenceEngine(5, 5, 2))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("1d6!", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(15), total)
}

func TestDiceRoll_TargetSuccessFailure(t *testing.T) {
	// 3d6>=5f<=2 with faces 5,2,4 (seq 4,1,3): success, failure, neither.
	gen := newGen(t, dice.NewSequenceEngine(4, 1, 3))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("3d6>=5f<=2", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(0), total) // +1 -1 +0
}

func TestDiceRoll_RollGroup(t *testing.T) {
	// {2d6, 1d8}kh1: sub1 faces 3,4 (seq 2,3) = 7; sub2 face 5 (seq 4) = 5; keep highest -> 7.
	gen := newGen(t, dice.NewSequenceEngine(2, 3, 4))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("{2d6, 1d8}kh1", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(7), total)
}

func TestDiceRoll_MathFunction(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(3))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("floor(1d6/2)", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(2), total) // face 4, 4/2=2
}

func TestDiceRoll_MinMaxTotal(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(2))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6+1", gen, eval)
	require.NoError(t, err)

	min, err := d.MinTotal()
	require.NoError(t, err)
	assert.Equal(t, float64(3), min)

	max, err := d.MaxTotal()
	require.NoError(t, err)
	assert.Equal(t, float64(13), max)

	avg, err := d.AverageTotal()
	require.NoError(t, err)
	assert.Equal(t, float64(8), avg)
}

func TestDiceRoll_ExportImportRoundTrip(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(3, 4))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6+3", gen, eval)
	require.NoError(t, err)
	_, err = d.Roll()
	require.NoError(t, err)

	data, err := d.Export()
	require.NoError(t, err)

	imported, err := dice.Import(data, gen, eval)
	require.NoError(t, err)

	total, err := imported.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(12), total)
	assert.Equal(t, "2d6+3", imported.Notation)
}

func TestDiceRoll_ExportBase64RoundTrip(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(3, 4))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6+3", gen, eval)
	require.NoError(t, err)

	encoded, err := d.ExportBase64()
	require.NoError(t, err)

	imported, err := dice.Import([]byte(encoded), gen, eval)
	require.NoError(t, err)

	total, err := imported.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(12), total)
}

func TestImport_RawNotation(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(3))
	eval := dice.NewEvaluator()

	d, err := dice.Import([]byte("1d6"), gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(4), total)
}

func TestParse_EmptyNotation(t *testing.T) {
	_, err := dice.Parse("")
	require.Error(t, err)
	assert.ErrorIs(t, err, dice.ErrMissingArgument)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := dice.Parse("2d")
	require.Error(t, err)
	var syntaxErr *dice.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestComparePoint_OperatorAliases(t *testing.T) {
	cpEq, err := dice.NewComparePoint("==", 4)
	require.NoError(t, err)
	cpNe, err := dice.NewComparePoint("<>", 4)
	require.NoError(t, err)

	assert.True(t, cpEq.Matches(4))
	assert.True(t, cpNe.Matches(5))
	assert.False(t, cpNe.Matches(4))
}

func TestComparePoint_NaNNeverMatches(t *testing.T) {
	cp, err := dice.NewComparePoint("!=", 4)
	require.NoError(t, err)
	assert.False(t, cp.Matches(nan()))
}

func nan() float64 {
	var zero float64
	return zero / zero
}

// TestDiceRoll_StaysWithinBounds is a property test: for a range of
// standard-die notations and random math-engine draws, every total
// must fall within [MinTotal, MaxTotal].
func TestDiceRoll_StaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		qty := rapid.IntRange(1, 10).Draw(rt, "qty")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		notation := strconv.Itoa(qty) + "d" + strconv.Itoa(sides)

		gen, err := dice.NewGenerator(dice.NewMathEngine())
		require.NoError(rt, err)
		eval := dice.NewEvaluator()

		d, err := dice.NewDiceRoll(notation, gen, eval)
		require.NoError(rt, err)

		total, err := d.Total()
		require.NoError(rt, err)

		min, err := d.MinTotal()
		require.NoError(rt, err)
		max, err := d.MaxTotal()
		require.NoError(rt, err)

		assert.GreaterOrEqual(rt, total, min)
		assert.LessOrEqual(rt, total, max)
	})
}
