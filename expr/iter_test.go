package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/expr"
)

// TestIter_BreadthFirst verifies the level-by-level traversal order over
// (x <= 2) || (y > 2).
func TestIter_BreadthFirst(t *testing.T) {
	b := expr.NewBuilder()
	x, err := b.FloatVar("x")
	require.NoError(t, err)
	y, err := b.FloatVar("y")
	require.NoError(t, err)
	lit := b.FloatConst(2.0)

	pred1 := b.MakeLe(x, lit)
	pred2 := b.MakeGt(y, lit)
	spec, err := b.MakeOr(pred1, pred2)
	require.NoError(t, err)

	want := []expr.ExprRef{
		expr.BoolRef(spec),
		expr.BoolRef(pred1),
		expr.BoolRef(pred2),
		expr.NumRef(x),
		expr.NumRef(lit),
		expr.NumRef(y),
		expr.NumRef(lit),
	}

	it := expr.NewIter(expr.BoolRef(spec))
	got := make([]expr.ExprRef, 0, len(want))
	for {
		ref, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, ref)
	}
	assert.Equal(t, want, got, "breadth-first order must visit each level left to right")
}

// TestExprRef_Kind verifies the reference discriminators and leaf arguments.
func TestExprRef_Kind(t *testing.T) {
	b := expr.NewBuilder()
	p, err := b.BoolVar("p")
	require.NoError(t, err)
	x, err := b.FloatVar("x")
	require.NoError(t, err)

	assert.True(t, expr.BoolRef(p).IsBoolean())
	assert.False(t, expr.BoolRef(p).IsNumeric())
	assert.True(t, expr.NumRef(x).IsNumeric())

	assert.Nil(t, expr.BoolRef(p).Args(), "variables are leaves")
	assert.Nil(t, expr.NumRef(b.IntConst(3)).Args(), "literals are leaves")

	until := b.MakeUntil(p, p)
	assert.Len(t, expr.BoolRef(until).Args(), 2)
}
