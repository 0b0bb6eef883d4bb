package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/expr"
	"github.com/katalvlaran/stlmon/monitor"
	"github.com/katalvlaran/stlmon/signal"
)

// TestEvalNumeric_Constant verifies that a literal evaluates to a constant
// signal.
func TestEvalNumeric_Constant(t *testing.T) {
	b := expr.NewBuilder()
	tr := monitor.NewMapTrace()

	rob, err := monitor.EvalNumeric[float64](b.FloatConst(5.0), tr, signal.Linear)
	require.NoError(t, err)
	assert.Equal(t, signal.KindConstant, rob.Kind())
	v, _ := rob.At(0)
	assert.Equal(t, 5.0, v)
}

// TestEvalNumeric_Addition verifies sample-wise addition of two trace
// variables.
func TestEvalNumeric_Addition(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.FloatVar("a")
	require.NoError(t, err)
	bb, err := b.FloatVar("b")
	require.NoError(t, err)
	spec, err := b.MakeAdd(a, bb)
	require.NoError(t, err)

	tr := traceOf(map[string]monitor.AnySignal{
		"a": floatSig(t, [2]float64{0, 1.3}, [2]float64{0.7, 3.0}, [2]float64{1.3, 0.1}, [2]float64{2.1, -2.2}),
		"b": floatSig(t, [2]float64{0, 2.5}, [2]float64{0.7, 4.0}, [2]float64{1.3, -1.2}, [2]float64{2.1, 1.7}),
	})

	rob, err := monitor.EvalNumeric[float64](spec, tr, signal.Linear)
	require.NoError(t, err)
	assertApproxRobustness(t, rob,
		[2]float64{0, 3.8},
		[2]float64{0.7, 7.0},
		[2]float64{1.3, -1.1},
		[2]float64{2.1, -0.5},
	)
}

// TestEvalNumeric_MissingSignal verifies the missing-variable failure.
func TestEvalNumeric_MissingSignal(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.FloatVar("a")
	require.NoError(t, err)

	_, err = monitor.EvalNumeric[float64](a, monitor.NewMapTrace(), signal.Linear)
	assert.ErrorIs(t, err, monitor.ErrSignalNotPresent)
}

// TestEvalNumeric_TypeMismatch verifies that a signal bound at the wrong
// scalar type is treated as absent.
func TestEvalNumeric_TypeMismatch(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.IntVar("a")
	require.NoError(t, err)

	tr := traceOf(map[string]monitor.AnySignal{
		"a": floatSig(t, [2]float64{0, 1}),
	})
	_, err = monitor.EvalNumeric[float64](a, tr, signal.Linear)
	assert.ErrorIs(t, err, monitor.ErrSignalNotPresent,
		"an int variable cannot read a float signal")
}

// TestQuantitative_LessThanWithCrossing is the reference scenario: a < 0
// over a trace that crosses zero between its last two samples.
func TestQuantitative_LessThanWithCrossing(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.FloatVar("a")
	require.NoError(t, err)
	spec := b.MakeLt(a, b.FloatConst(0))

	tr := traceOf(map[string]monitor.AnySignal{
		"a": floatSig(t, [2]float64{0, 1.3}, [2]float64{0.7, 3.0}, [2]float64{1.3, 0.1}, [2]float64{2.1, -2.2}),
	})

	rob, err := monitor.EvalQuantitative(spec, tr, signal.Linear)
	require.NoError(t, err)
	assertApproxRobustness(t, rob,
		[2]float64{0, -1.3},
		[2]float64{0.7, -3.0},
		[2]float64{1.3, -0.1},
		[2]float64{1.334782609, 0.0},
		[2]float64{2.1, 2.2},
	)
}

// TestQuantitative_EventuallyUnbounded is the reference scenario:
// F (a >= 0), linear interpolation.
func TestQuantitative_EventuallyUnbounded(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.FloatVar("a")
	require.NoError(t, err)
	spec := b.MakeEventually(b.MakeGe(a, b.FloatConst(0)))

	tr := traceOf(map[string]monitor.AnySignal{
		"a": floatSig(t, [2]float64{0, 2.5}, [2]float64{0.7, 4.0}, [2]float64{1.3, -1.0}, [2]float64{2.1, 1.7}),
	})

	rob, err := monitor.EvalQuantitative(spec, tr, signal.Linear)
	require.NoError(t, err)
	assertApproxRobustness(t, rob,
		[2]float64{0, 4.0},
		[2]float64{0.7, 4.0},
		[2]float64{1.18, 1.7},
		[2]float64{1.3, 1.7},
		[2]float64{1.596296296, 1.7},
		[2]float64{2.1, 1.7},
	)
}

// TestQuantitative_UntilUnboundedConstants is the reference scenario:
// (a > 0) U (b > 0) over effectively constant operands.
func TestQuantitative_UntilUnboundedConstants(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.IntVar("a")
	require.NoError(t, err)
	bv, err := b.IntVar("b")
	require.NoError(t, err)
	spec := b.MakeUntil(b.MakeGt(a, b.IntConst(0)), b.MakeGt(bv, b.IntConst(0)))

	tr := traceOf(map[string]monitor.AnySignal{
		"a": intSig(t, []float64{0, 5}, []int64{2, 2}),
		"b": intSig(t, []float64{0, 5}, []int64{4, 4}),
	})

	rob, err := monitor.EvalQuantitative(spec, tr, signal.Constant)
	require.NoError(t, err)
	assertApproxRobustness(t, rob, [2]float64{0, 2.0}, [2]float64{5, 2.0})
}

// TestQuantitative_UntilUnboundedVarying exercises the until kernel's
// coalescing sweep over operands with differing time grids.
func TestQuantitative_UntilUnboundedVarying(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.IntVar("a")
	require.NoError(t, err)
	bv, err := b.IntVar("b")
	require.NoError(t, err)
	spec := b.MakeUntil(b.MakeGt(a, b.IntConst(0)), b.MakeGt(bv, b.IntConst(0)))

	tr := traceOf(map[string]monitor.AnySignal{
		"a": intSig(t, []float64{1.0, 3.5, 4.7, 5.3, 6.2}, []int64{1, 7, 3, 5, 1}),
		"b": intSig(t, []float64{4, 6}, []int64{2, 3}),
	})

	rob, err := monitor.EvalQuantitative(spec, tr, signal.Constant)
	require.NoError(t, err)
	assertApproxRobustness(t, rob, [2]float64{4, 3.0}, [2]float64{6, 3.0})
}

// TestQuantitative_InvalidInterval verifies that empty and singleton
// windows are rejected.
func TestQuantitative_InvalidInterval(t *testing.T) {
	b := expr.NewBuilder()
	p, err := b.BoolVar("p")
	require.NoError(t, err)

	tr := traceOf(map[string]monitor.AnySignal{
		"p": boolSig(t, []float64{0, 1}, []bool{true, true}),
	})

	singleton := b.MakeTimedEventually(expr.NewInterval(secs(2), secs(2)), p)
	_, err = monitor.EvalQuantitative(singleton, tr, signal.Constant)
	assert.ErrorIs(t, err, monitor.ErrInvalidInterval)

	empty := b.MakeTimedAlways(expr.NewInterval(secs(3), secs(1)), p)
	_, err = monitor.EvalQuantitative(empty, tr, signal.Constant)
	assert.ErrorIs(t, err, monitor.ErrInvalidInterval)
}

// TestQuantitative_NextAndOracle verifies the sample-shift semantics.
func TestQuantitative_NextAndOracle(t *testing.T) {
	b := expr.NewBuilder()
	a, err := b.FloatVar("a")
	require.NoError(t, err)
	cmp := b.MakeGe(a, b.FloatConst(0))

	tr := traceOf(map[string]monitor.AnySignal{
		"a": floatSig(t, [2]float64{0, 1}, [2]float64{1, 2}, [2]float64{2, 3}),
	})

	next, err := monitor.EvalQuantitative(b.MakeNext(cmp), tr, signal.Linear)
	require.NoError(t, err)
	assertApproxRobustness(t, next, [2]float64{1, 2}, [2]float64{2, 3})

	oracle, err := monitor.EvalQuantitative(b.MakeOracle(2, cmp), tr, signal.Linear)
	require.NoError(t, err)
	assertApproxRobustness(t, oracle, [2]float64{2, 3})

	// Looking further ahead than the signal reaches leaves nothing.
	exhausted, err := monitor.EvalQuantitative(b.MakeOracle(3, cmp), tr, signal.Linear)
	require.NoError(t, err)
	assert.True(t, exhausted.IsEmpty())
}

// TestQuantitative_BoolLiterals verifies the definite verdicts.
func TestQuantitative_BoolLiterals(t *testing.T) {
	b := expr.NewBuilder()
	tr := monitor.NewMapTrace()

	top, err := monitor.EvalQuantitative(b.BoolConst(true), tr, signal.Linear)
	require.NoError(t, err)
	v, _ := top.At(0)
	assert.True(t, v > 0 && v*2 == v, "true is +Inf")

	bot, err := monitor.EvalQuantitative(b.BoolConst(false), tr, signal.Linear)
	require.NoError(t, err)
	v, _ = bot.At(0)
	assert.True(t, v < 0 && v*2 == v, "false is -Inf")
}
