package dice_test

import (
	"testing"

	"github.com/forgeweave/diceroller/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceRoll_UniqueModifier_RerollsDuplicates(t *testing.T) {
	// 3d6u, initial faces 4,4,1 (seq 3,3,0); index1 duplicates index0 so
	// it is rerolled once more (seq 1 -> face 2), which is not a
	// duplicate of [4, 1], so the chain stops. Total 4+2+1=7.
	gen := newGen(t, dice.NewSequenceEngine(3, 3, 0, 1))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("3d6u", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(7), total)

	out, err := d.Output()
	require.NoError(t, err)
	assert.Contains(t, out, "u")
}

func TestDiceRoll_UniqueModifier_Once_StopsAfterOneAttempt(t *testing.T) {
	// 2d6uo with both initial faces 4 (seq 3,3); the "once" reroll still
	// draws a duplicate 4 (seq 3 again) but uo gives up after a single
	// attempt, leaving the duplicate value in place.
	gen := newGen(t, dice.NewSequenceEngine(3, 3, 3))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6uo", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(8), total)
}

func TestDiceRoll_UniqueModifier_ComparePointRestrictsEligibility(t *testing.T) {
	// 3d6u>=5, initial faces 6,6,2 (seq 5,5,1). Only duplicates matching
	// >=5 are rerolled; index1 (6, matches, duplicate of index0) is
	// rerolled to 3 (seq 2). index2 (2, not matching) stays as-is even
	// though nothing else duplicates it. Total 6+3+2=11.
	gen := newGen(t, dice.NewSequenceEngine(5, 5, 1, 2))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("3d6u>=5", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(11), total)
}

func TestDiceRoll_SortingModifier_Ascending(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(3, 0, 5))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("3d6sa", gen, eval)
	require.NoError(t, err)

	out, err := d.Output()
	require.NoError(t, err)
	// faces 4, 1, 6 sorted ascending -> 1, 4, 6
	assert.Regexp(t, `1.*4.*6`, out)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(11), total)
}

func TestDiceRoll_SortingModifier_Descending(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(3, 0, 5))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("3d6sd", gen, eval)
	require.NoError(t, err)

	out, err := d.Output()
	require.NoError(t, err)
	assert.Regexp(t, `6.*4.*1`, out)
}

func TestDiceRoll_SortingModifier_RecursesIntoRollGroup(t *testing.T) {
	// {2d6, 1d8}sd: sub1 faces 4,3 (seq 3,2); sub2 face 5 (seq 4). Each
	// sub-expression's own dice are sorted independently.
	gen := newGen(t, dice.NewSequenceEngine(3, 2, 4))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("{2d6, 1d8}sd", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(4+3+5), total)
}

func TestDiceRoll_Explode_Compound_CollapsesChainToOneRoll(t *testing.T) {
	// 1d6!! with faces 6,6,3 (seq 5,5,2): the chain collapses to a
	// single RollResult of 15.
	gen := newGen(t, dice.NewSequenceEngine(5, 5, 2))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("1d6!!", gen, eval)
	require.NoError(t, err)

	rg, err := d.Roll()
	require.NoError(t, err)

	rolls := rg.Elements[0].(dice.RollsElement).Rolls.Rolls
	require.Len(t, rolls, 1)
	assert.Equal(t, float64(15), rolls[0].Value)
	assert.True(t, rolls[0].HasFlag("compound"))

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(15), total)
}

func TestDiceRoll_Explode_Penetrate_DecrementsEachExtraRoll(t *testing.T) {
	// 1d6!p>=5, raw faces 6,6,3 (seq 5,5,2): each explosion roll after
	// the first is reduced by 1 before being appended and before the
	// next continuation check, so the chain is [6, 5, 2] (5 >= 5 keeps
	// exploding, the decremented 2 does not).
	gen := newGen(t, dice.NewSequenceEngine(5, 5, 2))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("1d6!p>=5", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(6+5+2), total)
}

func TestDiceRoll_Explode_CompoundPenetrate_CollapsesPenetratedChain(t *testing.T) {
	gen := newGen(t, dice.NewSequenceEngine(5, 5, 2))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("1d6!!p>=5", gen, eval)
	require.NoError(t, err)

	rg, err := d.Roll()
	require.NoError(t, err)
	rolls := rg.Elements[0].(dice.RollsElement).Rolls.Rolls
	require.Len(t, rolls, 1)
	assert.Equal(t, float64(6+5+2), rolls[0].Value)
	assert.True(t, rolls[0].HasFlag("penetrate"))
}

func TestDiceRoll_MinValueModifier_ClampsLowRolls(t *testing.T) {
	// 3d6min3, faces 1,4,2 (seq 0,3,1) -> clamped to 3,4,3 = 10.
	gen := newGen(t, dice.NewSequenceEngine(0, 3, 1))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("3d6min3", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(10), total)
}

func TestDiceRoll_MaxValueModifier_ClampsHighRolls(t *testing.T) {
	// 3d6max4, faces 1,6,2 (seq 0,5,1) -> clamped to 1,4,2 = 7.
	gen := newGen(t, dice.NewSequenceEngine(0, 5, 1))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("3d6max4", gen, eval)
	require.NoError(t, err)

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(7), total)
}

func TestDiceRoll_CriticalSuccessModifier_FlagsWithoutChangingTotal(t *testing.T) {
	// 2d20cs>=18, faces 20,17 (seq 19,16): only the 20 is flagged, total
	// is the unmodified sum.
	gen := newGen(t, dice.NewSequenceEngine(19, 16))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d20cs>=18", gen, eval)
	require.NoError(t, err)

	rg, err := d.Roll()
	require.NoError(t, err)
	rolls := rg.Elements[0].(dice.RollsElement).Rolls.Rolls
	assert.True(t, rolls[0].HasFlag("critical-success"))
	assert.False(t, rolls[1].HasFlag("critical-success"))

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(37), total)
}

func TestDiceRoll_CriticalSuccessModifier_DefaultsToContextMax(t *testing.T) {
	// 2d6cs with no compare point defaults to "= context.max" (6).
	gen := newGen(t, dice.NewSequenceEngine(5, 2))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6cs", gen, eval)
	require.NoError(t, err)

	rg, err := d.Roll()
	require.NoError(t, err)
	rolls := rg.Elements[0].(dice.RollsElement).Rolls.Rolls
	assert.True(t, rolls[0].HasFlag("critical-success"))
	assert.False(t, rolls[1].HasFlag("critical-success"))
}

func TestDiceRoll_CriticalFailureModifier_DefaultsToContextMin(t *testing.T) {
	// 2d6cf with no compare point defaults to "= context.min" (1).
	gen := newGen(t, dice.NewSequenceEngine(0, 4))
	eval := dice.NewEvaluator()

	d, err := dice.NewDiceRoll("2d6cf", gen, eval)
	require.NoError(t, err)

	rg, err := d.Roll()
	require.NoError(t, err)
	rolls := rg.Elements[0].(dice.RollsElement).Rolls.Rolls
	assert.True(t, rolls[0].HasFlag("critical-failure"))
	assert.False(t, rolls[1].HasFlag("critical-failure"))

	total, err := d.Total()
	require.NoError(t, err)
	assert.Equal(t, float64(1+5), total)
}
