package monitor

import (
	"math"
	"slices"
	"time"

	"github.com/katalvlaran/stlmon/expr"
	"github.com/katalvlaran/stlmon/signal"
)

// EvalQuantitative evaluates the robustness of a Boolean expression over the
// trace: a float64 signal whose sign at each time matches the Boolean
// verdict and whose magnitude bounds how much the trace may be perturbed
// without changing it. +Inf and -Inf mark definite verdicts.
func EvalQuantitative(root expr.BoolExpr, tr Trace, in signal.Interpolation) (*signal.Signal[float64], error) {
	switch e := root.(type) {
	case expr.BoolLit:
		if e.Value {
			return signal.NewConstant(math.Inf(1)), nil
		}

		return signal.NewConstant(math.Inf(-1)), nil
	case expr.BoolVar:
		sig, ok := Lookup[bool](tr, e.Name)
		if !ok {
			return nil, ErrSignalNotPresent
		}

		return topOrBot(sig), nil
	case expr.Cmp:
		lhs, err := EvalNumeric[float64](e.Lhs, tr, in)
		if err != nil {
			return nil, err
		}
		rhs, err := EvalNumeric[float64](e.Rhs, tr, in)
		if err != nil {
			return nil, err
		}

		return cmpRobustness(e.Op, lhs, rhs, in)
	case expr.Not:
		arg, err := EvalQuantitative(e.Arg, tr, in)
		if err != nil {
			return nil, err
		}

		return signal.Negate(arg), nil
	case expr.And:
		acc := signal.NewConstant(math.Inf(1))
		for _, arg := range e.Args {
			item, err := EvalQuantitative(arg, tr, in)
			if err != nil {
				return nil, err
			}
			if acc, err = signal.Min(acc, item, in); err != nil {
				return nil, err
			}
		}

		return acc, nil
	case expr.Or:
		acc := signal.NewConstant(math.Inf(-1))
		for _, arg := range e.Args {
			item, err := EvalQuantitative(arg, tr, in)
			if err != nil {
				return nil, err
			}
			if acc, err = signal.Max(acc, item, in); err != nil {
				return nil, err
			}
		}

		return acc, nil
	case expr.Next:
		arg, err := EvalQuantitative(e.Arg, tr, in)
		if err != nil {
			return nil, err
		}

		return computeOracle(arg, 1)
	case expr.Oracle:
		arg, err := EvalQuantitative(e.Arg, tr, in)
		if err != nil {
			return nil, err
		}

		return computeOracle(arg, e.Steps)
	case expr.Always:
		arg, err := EvalQuantitative(e.Arg, tr, in)
		if err != nil {
			return nil, err
		}

		return computeAlways(arg, e.Interval, in)
	case expr.Eventually:
		arg, err := EvalQuantitative(e.Arg, tr, in)
		if err != nil {
			return nil, err
		}

		return computeEventually(arg, e.Interval, in)
	case expr.Until:
		lhs, err := EvalQuantitative(e.Lhs, tr, in)
		if err != nil {
			return nil, err
		}
		rhs, err := EvalQuantitative(e.Rhs, tr, in)
		if err != nil {
			return nil, err
		}

		return computeUntil(lhs, rhs, e.Interval, in)
	default:
		panic("monitor: unknown boolean expression variant")
	}
}

// cmpRobustness maps a comparison to its robustness margin: equality (and
// non-equality) to -|l-r|, less-than to r-l and greater-than to l-r, with
// strictness not affecting the margin.
func cmpRobustness(op expr.CmpOp, lhs, rhs *signal.Signal[float64], in signal.Interpolation) (*signal.Signal[float64], error) {
	switch op {
	case expr.CmpEq, expr.CmpNotEq:
		diff, err := signal.AbsDiff(lhs, rhs, in)
		if err != nil {
			return nil, err
		}

		return signal.Negate(diff), nil
	case expr.CmpLt, expr.CmpLe:
		return signal.Sub(rhs, lhs, in)
	default:
		return signal.Sub(lhs, rhs, in)
	}
}

// topOrBot widens a Boolean signal to robustness: true becomes +Inf and
// false becomes -Inf, sample-wise.
func topOrBot(sig *signal.Signal[bool]) *signal.Signal[float64] {
	top := math.Inf(1)
	bot := math.Inf(-1)
	switch sig.Kind() {
	case signal.KindEmpty:
		return signal.New[float64]()
	case signal.KindConstant:
		v, _ := sig.At(0)
		if v {
			return signal.NewConstant(top)
		}

		return signal.NewConstant(bot)
	default:
		out := signal.NewWithCapacity[float64](sig.Len())
		for _, s := range sig.Samples() {
			value := bot
			if s.Value {
				value = top
			}
			// Times come from a signal, so they are already monotonic.
			_ = out.Push(s.Time, value)
		}

		return out
	}
}

// computeOracle drops the first steps samples of the signal, looking that
// many samples ahead. A signal with no more than steps samples has no
// look-ahead left and becomes empty; constant signals are their own oracle.
func computeOracle(sig *signal.Signal[float64], steps int) (*signal.Signal[float64], error) {
	switch sig.Kind() {
	case signal.KindEmpty:
		return signal.New[float64](), nil
	case signal.KindConstant:
		return sig.Clone(), nil
	default:
		samples := sig.Samples()
		if len(samples) <= steps {
			return signal.New[float64](), nil
		}

		return signal.TryFromSamples(samples[steps:])
	}
}

// validateInterval rejects intervals no temporal operator can range over.
func validateInterval(iv expr.Interval) error {
	if iv.IsEmpty() || iv.IsSingleton() {
		return ErrInvalidInterval
	}

	return nil
}

// computeAlways evaluates always over the interval. Empty and constant
// signals are fixed points: a signal that is true everywhere is always true.
func computeAlways(sig *signal.Signal[float64], iv expr.Interval, in signal.Interpolation) (*signal.Signal[float64], error) {
	if err := validateInterval(iv); err != nil {
		return nil, err
	}
	if sig.Kind() != signal.KindSampled || sig.IsEmpty() {
		return sig.Clone(), nil
	}
	if iv.IsUntimed() {
		return untimedAlways(sig, in)
	}

	return timedAlways(sig, iv, in)
}

// timedAlways is the dual of timed eventually:
// G[a,b] x = -F[a,b](-x).
func timedAlways(sig *signal.Signal[float64], iv expr.Interval, in signal.Interpolation) (*signal.Signal[float64], error) {
	ev, err := timedEventually(signal.Negate(sig), iv, in)
	if err != nil {
		return nil, err
	}

	return signal.Negate(ev), nil
}

// untimedAlways sweeps a running minimum right to left over the time axis
// augmented with every zero crossing of the signal.
func untimedAlways(sig *signal.Signal[float64], in signal.Interpolation) (*signal.Signal[float64], error) {
	return untimedSweep(sig, in, math.Min)
}

// computeEventually evaluates eventually over the interval. Empty and
// constant signals are fixed points.
func computeEventually(sig *signal.Signal[float64], iv expr.Interval, in signal.Interpolation) (*signal.Signal[float64], error) {
	if err := validateInterval(iv); err != nil {
		return nil, err
	}
	if sig.Kind() != signal.KindSampled || sig.IsEmpty() {
		return sig.Clone(), nil
	}
	if iv.IsUntimed() {
		return untimedEventually(sig, in)
	}

	return timedEventually(sig, iv, in)
}

// untimedEventually sweeps a running maximum right to left over the time
// axis augmented with every zero crossing of the signal.
func untimedEventually(sig *signal.Signal[float64], in signal.Interpolation) (*signal.Signal[float64], error) {
	return untimedSweep(sig, in, math.Max)
}

// untimedSweep augments the signal's time axis with its zero crossings,
// interpolates the signal there, and folds the given extremum from the back
// in an expanding-window fashion.
func untimedSweep(sig *signal.Signal[float64], in signal.Interpolation, extremum func(a, b float64) float64) (*signal.Signal[float64], error) {
	times, err := sig.SyncWithIntersection(signal.Zero[float64](), in)
	if err != nil {
		return nil, err
	}
	if len(times) == 0 {
		return signal.New[float64](), nil
	}

	values := make([]float64, len(times))
	for i, t := range times {
		if values[i], err = interpOrHold(sig, t, in); err != nil {
			return nil, err
		}
	}
	for i := len(values) - 2; i >= 0; i-- {
		values[i] = extremum(values[i], values[i+1])
	}

	out := signal.NewWithCapacity[float64](len(times))
	for i, t := range times {
		if err = out.Push(t, values[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// timedEventually evaluates F[a,b] (b finite) or F[a,∞) on a sampled signal.
//
// The signal is first shifted left by a and re-sampled at the original time
// points. A finite window of width w = b-a wider than the whole signal (or
// an unbounded one) degenerates to the untimed sweep over the shifted
// signal; otherwise a max-wedge of width w runs over the time axis augmented
// with the zero crossings and their ±w translates.
func timedEventually(sig *signal.Signal[float64], iv expr.Interval, in signal.Interpolation) (*signal.Signal[float64], error) {
	times := sig.Times()
	if len(times) == 0 {
		return signal.New[float64](), nil
	}
	start := times[0]
	end := times[len(times)-1]
	a := iv.Start()

	// 1) Shift by the window offset and re-sample at the original times.
	shifted := signal.ShiftLeft(sig, a, in)
	if shifted.IsEmpty() {
		return signal.New[float64](), nil
	}
	resampled := signal.NewWithCapacity[float64](len(times))
	for _, t := range times {
		v, err := interpOrHold(shifted, t, in)
		if err != nil {
			return nil, err
		}
		if err = resampled.Push(t, v); err != nil {
			return nil, err
		}
	}

	// 2) A window longer than the signal sees everything to the
	// right: fall back to the untimed sweep on the shifted signal.
	b, bounded := iv.End()
	if !bounded || end-start < b-a {
		return untimedEventually(shifted, in)
	}
	width := b - a

	// 3) Augment the time axis with the zero crossings and their ±w
	// translates, clipped to the domain, so every window boundary the output
	// needs is an explicit candidate time.
	crossings, err := resampled.SyncWithIntersection(signal.Zero[float64](), in)
	if err != nil {
		return nil, err
	}
	augmented := make([]time.Duration, 0, 3*len(crossings))
	augmented = append(augmented, crossings...)
	for _, t := range crossings {
		augmented = append(augmented, min(end, t+width))
		augmented = append(augmented, max(start, saturatingSub(t, width)))
	}
	slices.Sort(augmented)
	augmented = dedupSorted(augmented)

	// 4) Stream the max-wedge of the window width over the candidate times:
	// one output per candidate, emitted as soon as its window [t, t+w] has
	// seen every input it covers.
	out := signal.NewWithCapacity[float64](len(augmented))
	wedge := NewMaxWedge[float64]()
	emit := func(at time.Duration) error {
		wedge.PurgeBefore(at)
		_, fv, ok := wedge.Front()
		if !ok {
			return signal.ErrInvalidOperation
		}

		return out.Push(at, fv)
	}
	next := 0
	for _, t := range augmented {
		// Windows ending strictly before t saw their last input already.
		for next < len(augmented) && augmented[next]+width < t {
			if err = emit(augmented[next]); err != nil {
				return nil, err
			}
			next++
		}
		v, err := interpOrHold(resampled, t, in)
		if err != nil {
			return nil, err
		}
		wedge.Update(t, v)
		// Windows ending exactly at t close with this input.
		for next < len(augmented) && augmented[next]+width == t {
			if err = emit(augmented[next]); err != nil {
				return nil, err
			}
			next++
		}
	}
	// The trailing windows run past the signal end and clamp to it.
	for ; next < len(augmented); next++ {
		if err = emit(augmented[next]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// computeUntil evaluates until via the rewrite of Donzé, Ferrère and Maler:
//
//	l U[a,b] r   =  min( F[a,b] r, G[0,a](l U r) )   when a > 0
//	l U[0,b] r   =  min( F[0,b] r, l U r )
//
// with the untimed kernel handling l U r.
func computeUntil(lhs, rhs *signal.Signal[float64], iv expr.Interval, in signal.Interpolation) (*signal.Signal[float64], error) {
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return signal.New[float64](), nil
	}

	ev, err := computeEventually(rhs, iv, in)
	if err != nil {
		return nil, err
	}
	untimed, err := untimedUntil(lhs, rhs, in)
	if err != nil {
		return nil, err
	}

	a := iv.Start()
	if iv.IsUntimed() || a == 0 {
		return signal.Min(ev, untimed, in)
	}

	guard, err := computeAlways(untimed, expr.NewInterval(0, a), in)
	if err != nil {
		return nil, err
	}

	return signal.Min(ev, guard, in)
}

// untimedUntil is the core until kernel: a right-to-left sweep over the
// intersection-augmented sync points of the operands, maintaining the
// suffix value and coalescing redundant equal points.
func untimedUntil(lhs, rhs *signal.Signal[float64], in signal.Interpolation) (*signal.Signal[float64], error) {
	syncPoints, err := lhs.SyncWithIntersection(rhs, in)
	if err != nil {
		return nil, err
	}
	if len(syncPoints) == 0 {
		return signal.New[float64](), nil
	}

	n := len(syncPoints)
	reversed := make([]signal.Sample[float64], 0, n)
	next := math.Inf(-1)
	for i := n - 1; i >= 0; i-- {
		t := syncPoints[i]
		v1, err := interpOrHold(lhs, t, in)
		if err != nil {
			return nil, err
		}
		v2, err := interpOrHold(rhs, t, in)
		if err != nil {
			return nil, err
		}

		z := math.Max(math.Min(v1, v2), math.Min(v1, next))
		if z == next && i < n-2 {
			// The value did not change: the previously recorded sample is
			// redundant between its neighbors.
			reversed = reversed[:len(reversed)-1]
		}
		reversed = append(reversed, signal.Sample[float64]{Time: t, Value: z})
		next = z
	}

	slices.Reverse(reversed)

	return signal.TryFromSamples(reversed)
}

// interpOrHold reconstructs the signal value at t, holding the boundary
// sample when t falls outside the domain and the interpolation method
// refuses to extrapolate (a left-shifted signal re-sampled at the original
// times runs past its shrunken domain).
func interpOrHold(sig *signal.Signal[float64], t time.Duration, in signal.Interpolation) (float64, error) {
	if v, ok := sig.InterpolateAt(t, in); ok {
		return v, nil
	}
	samples := sig.Samples()
	if len(samples) == 0 {
		return 0, signal.ErrInvalidOperation
	}
	if t <= samples[0].Time {
		return samples[0].Value, nil
	}

	return samples[len(samples)-1].Value, nil
}

// saturatingSub subtracts without crossing below zero.
func saturatingSub(a, b time.Duration) time.Duration {
	if a < b {
		return 0
	}

	return a - b
}

// dedupSorted collapses consecutive duplicates of a sorted slice in place.
func dedupSorted(times []time.Duration) []time.Duration {
	if len(times) == 0 {
		return times
	}
	out := times[:1]
	for _, t := range times[1:] {
		if out[len(out)-1] != t {
			out = append(out, t)
		}
	}

	return out
}
