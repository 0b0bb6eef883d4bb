package signal

import (
	"math"
	"time"
)

// Interpolation selects the policy used to reconstruct a signal's value
// between (and, for the step-wise policies, beyond) its samples. The chosen
// method is passed once at the top-level evaluator call and propagates
// uniformly to every internal sync, intersection and interpolation step.
//
//   - Constant - the value of the earlier sample holds on [a.Time, b.Time);
//     the later value holds at exactly b.Time.
//   - Nearest  - the value of the time-wise closer sample; ties go to the
//     later sample.
//   - Linear   - straight-line interpolation between samples (numerically
//     stable form); booleans keep the earlier value, since they are not
//     linearly interpolatable.
type Interpolation int

const (
	// Constant propagates the previous sample value forward.
	Constant Interpolation = iota

	// Nearest propagates the value of the closest sample.
	Nearest

	// Linear interpolates linearly between neighboring samples.
	Linear
)

// String returns the method name.
func (in Interpolation) String() string {
	switch in {
	case Constant:
		return "constant"
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	default:
		return "unknown"
	}
}

// InterpolateAt reconstructs the value of the signal at the given time point
// using the chosen interpolation method.
//
// Empty signals yield ok == false; constant signals yield their value for
// every time point. For sampled signals, an exact sample hit returns the
// stored value. A time outside the closed domain is reconstructible only by
// the step-wise methods (Constant and Nearest clamp to the boundary sample);
// Linear refuses to extrapolate and yields ok == false.
//
// Complexity: O(log n) via binary search.
func (s *Signal[T]) InterpolateAt(t time.Duration, in Interpolation) (T, bool) {
	var zero T
	switch s.kind {
	case KindEmpty:
		return zero, false
	case KindConstant:
		return s.constant, true
	}
	if len(s.times) == 0 {
		return zero, false
	}

	idx, exact := s.search(t)
	switch {
	case exact:
		return s.values[idx], true
	case idx == 0:
		// Before the start of the domain: only step-wise methods may clamp.
		if in == Linear {
			return zero, false
		}

		return s.values[0], true
	case idx == len(s.times):
		// Past the end of the domain: same extrapolation rule.
		if in == Linear {
			return zero, false
		}

		return s.values[len(s.values)-1], true
	default:
		seg := Segment[T]{
			First:  Sample[T]{Time: s.times[idx-1], Value: s.values[idx-1]},
			Second: Sample[T]{Time: s.times[idx], Value: s.values[idx]},
		}

		return interpolateSegment(seg, t, in)
	}
}

// interpolateSegment reconstructs the value at t, with
// seg.First.Time < t < seg.Second.Time, under the given method.
func interpolateSegment[T Value](seg Segment[T], t time.Duration, in Interpolation) (T, bool) {
	var zero T
	a, b := seg.First, seg.Second
	switch in {
	case Constant:
		switch {
		case t == b.Time:
			return b.Value, true
		case a.Time <= t && t < b.Time:
			return a.Value, true
		default:
			return zero, false
		}
	case Nearest:
		if t < a.Time || t > b.Time {
			return zero, false
		}
		if (b.Time - t) > (t - a.Time) {
			return a.Value, true
		}

		return b.Value, true
	default:
		return lerpSegment(seg, t)
	}
}

// lerpSegment performs linear interpolation strictly inside a segment.
//
// Booleans keep the earlier value. Numeric values use the stable
// interpolation formula: with u = (t-a.t)/(b.t-a.t), opposite-sign endpoints
// (zeros included) use u*b + (1-u)*a, u == 1 returns b, and the general case
// uses a + u*(b-a). A non-finite endpoint falls back to constant
// interpolation, as the stable form is meaningless there.
func lerpSegment[T Value](seg Segment[T], t time.Duration) (T, bool) {
	var zero T
	a, b := seg.First, seg.Second
	if _, isBool := any(a.Value).(bool); isBool {
		if a.Time < t && t < b.Time {
			return a.Value, true
		}

		return zero, false
	}

	t1 := a.Time.Seconds()
	t2 := b.Time.Seconds()
	at := t.Seconds()
	if at < t1 || at > t2 {
		return zero, false
	}
	u := (at - t1) / (t2 - t1)

	ya := numToFloat(a.Value)
	yb := numToFloat(b.Value)
	if !isFinite(ya) || !isFinite(yb) {
		return interpolateSegment(seg, t, Constant)
	}

	var val float64
	switch {
	case (ya <= 0 && yb >= 0) || (ya >= 0 && yb <= 0):
		val = u*yb + (1-u)*ya
	case u == 1:
		val = yb
	default:
		val = ya + u*(yb-ya)
	}

	return floatToValue[T](val)
}

// FindIntersection locates the proper crossing of two signal segments taken
// over the same time window.
//
// Constant and Nearest segments are step-wise or parallel and never yield a
// proper crossing. Linear boolean segments are resolved by case analysis on
// the endpoint orderings; linear numeric segments solve the two-line
// intersection in float64, treating a near-zero (< 1e-10) or non-finite
// denominator as parallel/coincident.
func FindIntersection[T Value](a, b Segment[T], in Interpolation) (Sample[T], bool) {
	var none Sample[T]
	if in != Linear {
		return none, false
	}
	if _, isBool := any(a.First.Value).(bool); isBool {
		return boolIntersection(a, b)
	}

	t1, y1 := a.First.Time.Seconds(), numToFloat(a.First.Value)
	t2, y2 := a.Second.Time.Seconds(), numToFloat(a.Second.Value)
	t3, y3 := b.First.Time.Seconds(), numToFloat(b.First.Value)
	t4, y4 := b.Second.Time.Seconds(), numToFloat(b.Second.Value)

	denom := (t1-t2)*(y3-y4) - (y1-y2)*(t3-t4)
	if math.Abs(denom) < 1e-10 || !isFinite(denom) {
		// The lines are parallel or coincident.
		return none, false
	}

	tTop := (t1*y2-y1*t2)*(t3-t4) - (t1-t2)*(t3*y4-y3*t4)
	if !isFinite(tTop) {
		return none, false
	}
	yTop := (t1*y2-y1*t2)*(y3-y4) - (y1-y2)*(t3*y4-y3*t4)

	when, ok := durationFromSeconds(tTop / denom)
	if !ok {
		return none, false
	}
	value, ok := floatToValue[T](yTop / denom)
	if !ok {
		return none, false
	}

	return Sample[T]{Time: when, Value: value}, true
}

// boolIntersection resolves crossings of boolean segments: equal left
// endpoints intersect at the inner left sample, equal right endpoints at the
// outer right sample, and a switched pair at the inner right sample.
func boolIntersection[T Value](a, b Segment[T]) (Sample[T], bool) {
	var none Sample[T]
	left, _ := partialCmp(a.First.Value, b.First.Value)
	right, _ := partialCmp(a.Second.Value, b.Second.Value)

	switch {
	case left == 0:
		// Already intersecting: return the inner (later) left time point.
		if a.First.Time < b.First.Time {
			return b.First, true
		}

		return a.First, true
	case right == 0:
		// They meet at the end: return the outer (later) right time point.
		if a.Second.Time < b.Second.Time {
			return b.Second, true
		}

		return a.Second, true
	case left*right < 0:
		// They switched: the earlier right endpoint is where they cross.
		if a.Second.Time < b.Second.Time {
			return a.Second, true
		}

		return b.Second, true
	default:
		return none, false
	}
}

// numToFloat widens a numeric sample value to float64. Booleans map to 0/1
// so the helper is total over Value, but boolean code paths never rely on it.
func numToFloat[T Value](v T) float64 {
	switch x := any(v).(type) {
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float64:
		return x
	case bool:
		if x {
			return 1
		}

		return 0
	default:
		return 0
	}
}

// floatToValue narrows a float64 to the sample type T, truncating toward
// zero for the integer types. ok is false when the value cannot be
// represented (NaN or out of range for integers, any value for bool).
func floatToValue[T Value](f float64) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case float64:
		return any(f).(T), true
	case int64:
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return zero, false
		}

		return any(int64(f)).(T), true
	case uint64:
		if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
			return zero, false
		}

		return any(uint64(f)).(T), true
	default:
		return zero, false
	}
}

// partialCmp orders two sample values: -1, 0 or +1. ok is false when the
// values admit no order (NaN). Booleans order false < true.
func partialCmp[T Value](a, b T) (int, bool) {
	switch x := any(a).(type) {
	case bool:
		y := any(b).(bool)
		switch {
		case x == y:
			return 0, true
		case !x:
			return -1, true
		default:
			return 1, true
		}
	case int64:
		return cmpOrdered(x, any(b).(int64)), true
	case uint64:
		return cmpOrdered(x, any(b).(uint64)), true
	default:
		xf := any(a).(float64)
		yf := any(b).(float64)
		if math.IsNaN(xf) || math.IsNaN(yf) {
			return 0, false
		}

		return cmpOrdered(xf, yf), true
	}
}

func cmpOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// durationFromSeconds converts a float64 second count to a Duration,
// rejecting non-finite and negative values.
func durationFromSeconds(sec float64) (time.Duration, bool) {
	if !isFinite(sec) || sec < 0 {
		return 0, false
	}

	return time.Duration(math.Round(sec * float64(time.Second))), true
}
