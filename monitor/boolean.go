package monitor

import (
	"github.com/katalvlaran/stlmon/expr"
	"github.com/katalvlaran/stlmon/signal"
)

// EvalBoolean evaluates the Boolean verdict of an expression over the trace:
// the robustness signal compared against zero, sample-wise. The comparison
// introduces a sample at every zero crossing of the robustness, so the
// verdict flips exactly where the margin changes sign.
func EvalBoolean(root expr.BoolExpr, tr Trace, in signal.Interpolation) (*signal.Signal[bool], error) {
	rob, err := EvalQuantitative(root, tr, in)
	if err != nil {
		return nil, err
	}

	return signal.Ge(rob, signal.Zero[float64](), in)
}
