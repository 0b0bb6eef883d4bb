package monitor_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/stlmon/expr"
	"github.com/katalvlaran/stlmon/monitor"
	"github.com/katalvlaran/stlmon/signal"
)

// ExampleEvalBoolean monitors x < 0 over a two-sample trace with constant
// interpolation and prints the verdict at each sample.
func ExampleEvalBoolean() {
	b := expr.NewBuilder()
	x, err := b.FloatVar("x")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	spec := b.MakeLt(x, b.FloatConst(0))

	sig, err := signal.TryFromSamples([]signal.Sample[float64]{
		{Time: 0, Value: 1.0},
		{Time: time.Second, Value: -1.0},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	trace := monitor.NewMapTrace()
	trace.Set("x", sig)

	verdict, err := monitor.EvalBoolean(spec, trace, signal.Constant)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, s := range verdict.Samples() {
		fmt.Printf("%v %v\n", s.Time, s.Value)
	}
	// Output:
	// 0s false
	// 1s true
}
