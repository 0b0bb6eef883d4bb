package signal

import (
	"math"
)

// mapSignal applies op sample-wise: empty stays empty, a constant maps its
// value, and a sampled signal maps every sample into a fresh result.
func mapSignal[T, U Value](s *Signal[T], op func(T) U) *Signal[U] {
	switch s.kind {
	case KindEmpty:
		return New[U]()
	case KindConstant:
		return NewConstant(op(s.constant))
	default:
		out := NewWithCapacity[U](len(s.times))
		out.times = append(out.times, s.times...)
		for _, v := range s.values {
			out.values = append(out.values, op(v))
		}

		return out
	}
}

// binaryOp evaluates op over the sync points of the two signals. Empty
// operands absorb; two constants fold to a constant.
func binaryOp[T, U Value](a, b *Signal[T], in Interpolation, op func(T, T) U) *Signal[U] {
	if a.IsEmpty() || b.IsEmpty() {
		return New[U]()
	}
	if a.kind == KindConstant && b.kind == KindConstant {
		return NewConstant(op(a.constant, b.constant))
	}

	syncPoints, _ := SyncPoints(a, b)
	out := NewWithCapacity[U](len(syncPoints))
	for _, t := range syncPoints {
		v1, _ := a.InterpolateAt(t, in)
		v2, _ := b.InterpolateAt(t, in)
		out.times = append(out.times, t)
		out.values = append(out.values, op(v1, v2))
	}

	return out
}

// binaryOpWithIntersection evaluates op over the intersection-augmented sync
// points, so that results sampled around a crossing include the crossing
// itself.
func binaryOpWithIntersection[T, U Value](a, b *Signal[T], in Interpolation, op func(T, T) U) (*Signal[U], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return New[U](), nil
	}
	if a.kind == KindConstant && b.kind == KindConstant {
		return NewConstant(op(a.constant, b.constant)), nil
	}

	syncPoints, err := a.SyncWithIntersection(b, in)
	if err != nil {
		return nil, err
	}
	out := NewWithCapacity[U](len(syncPoints))
	for _, t := range syncPoints {
		v1, _ := a.InterpolateAt(t, in)
		v2, _ := b.InterpolateAt(t, in)
		out.times = append(out.times, t)
		out.values = append(out.values, op(v1, v2))
	}

	return out, nil
}

// Negate returns the sample-wise arithmetic negation of the signal.
func Negate[T Num](s *Signal[T]) *Signal[T] {
	return mapSignal(s, func(v T) T { return -v })
}

// Abs returns the sample-wise absolute value of the signal. Unsigned values
// are returned unchanged.
func Abs[T Num](s *Signal[T]) *Signal[T] {
	return mapSignal(s, absValue[T])
}

func absValue[T Num](v T) T {
	switch x := any(v).(type) {
	case int64:
		if x < 0 {
			return any(-x).(T)
		}

		return v
	case float64:
		return any(math.Abs(x)).(T)
	default:
		return v
	}
}

// Add returns the sample-wise sum of the two signals over their sync points.
func Add[T Num](a, b *Signal[T], in Interpolation) *Signal[T] {
	return binaryOp(a, b, in, func(x, y T) T { return x + y })
}

// Mul returns the sample-wise product of the two signals over their sync
// points.
func Mul[T Num](a, b *Signal[T], in Interpolation) *Signal[T] {
	return binaryOp(a, b, in, func(x, y T) T { return x * y })
}

// Div returns the sample-wise quotient of the two signals over their sync
// points.
func Div[T Num](a, b *Signal[T], in Interpolation) *Signal[T] {
	return binaryOp(a, b, in, func(x, y T) T { return x / y })
}

// Pow returns the sample-wise power a^b of two float signals over their
// sync points.
func Pow(a, b *Signal[float64], in Interpolation) *Signal[float64] {
	return binaryOp(a, b, in, math.Pow)
}

// Sub returns the sample-wise difference a-b over the intersection-augmented
// sync points, so a crossing of the operands contributes a zero sample.
func Sub[T Num](a, b *Signal[T], in Interpolation) (*Signal[T], error) {
	return binaryOpWithIntersection(a, b, in, func(x, y T) T { return x - y })
}

// AbsDiff returns the sample-wise absolute difference |a-b| over the
// intersection-augmented sync points.
func AbsDiff[T Num](a, b *Signal[T], in Interpolation) (*Signal[T], error) {
	return binaryOpWithIntersection(a, b, in, func(x, y T) T {
		if x < y {
			return y - x
		}

		return x - y
	})
}

// Min returns the sample-wise minimum of the two signals over the
// intersection-augmented sync points.
func Min[T Num](a, b *Signal[T], in Interpolation) (*Signal[T], error) {
	return binaryOpWithIntersection(a, b, in, func(x, y T) T {
		if x < y {
			return x
		}

		return y
	})
}

// Max returns the sample-wise maximum of the two signals over the
// intersection-augmented sync points.
func Max[T Num](a, b *Signal[T], in Interpolation) (*Signal[T], error) {
	return binaryOpWithIntersection(a, b, in, func(x, y T) T {
		if x > y {
			return x
		}

		return y
	})
}

// Not returns the sample-wise logical negation of a boolean signal.
func Not(s *Signal[bool]) *Signal[bool] {
	return mapSignal(s, func(v bool) bool { return !v })
}

// And returns the sample-wise conjunction of two boolean signals over their
// sync points.
func And(a, b *Signal[bool], in Interpolation) *Signal[bool] {
	return binaryOp(a, b, in, func(x, y bool) bool { return x && y })
}

// Or returns the sample-wise disjunction of two boolean signals over their
// sync points.
func Or(a, b *Signal[bool], in Interpolation) *Signal[bool] {
	return binaryOp(a, b, in, func(x, y bool) bool { return x || y })
}

// Compare evaluates op over the ordering of the two signals at every
// intersection-augmented sync point, producing a boolean signal. The
// augmentation guarantees that the exact crossing time, where the signals
// compare equal, appears as a sample. Incomparable values (NaN) yield
// ErrInvalidOperation.
func Compare[T Value](a, b *Signal[T], in Interpolation, op func(ord int) bool) (*Signal[bool], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return New[bool](), nil
	}
	if a.kind == KindConstant && b.kind == KindConstant {
		ord, ok := partialCmp(a.constant, b.constant)
		if !ok {
			return nil, ErrInvalidOperation
		}

		return NewConstant(op(ord)), nil
	}

	syncPoints, err := a.SyncWithIntersection(b, in)
	if err != nil {
		return nil, err
	}
	out := NewWithCapacity[bool](len(syncPoints))
	for _, t := range syncPoints {
		v1, _ := a.InterpolateAt(t, in)
		v2, _ := b.InterpolateAt(t, in)
		ord, ok := partialCmp(v1, v2)
		if !ok {
			return nil, ErrInvalidOperation
		}
		out.times = append(out.times, t)
		out.values = append(out.values, op(ord))
	}

	return out, nil
}

// Lt compares a < b time-wise.
func Lt[T Value](a, b *Signal[T], in Interpolation) (*Signal[bool], error) {
	return Compare(a, b, in, func(ord int) bool { return ord < 0 })
}

// Le compares a <= b time-wise.
func Le[T Value](a, b *Signal[T], in Interpolation) (*Signal[bool], error) {
	return Compare(a, b, in, func(ord int) bool { return ord <= 0 })
}

// Gt compares a > b time-wise.
func Gt[T Value](a, b *Signal[T], in Interpolation) (*Signal[bool], error) {
	return Compare(a, b, in, func(ord int) bool { return ord > 0 })
}

// Ge compares a >= b time-wise.
func Ge[T Value](a, b *Signal[T], in Interpolation) (*Signal[bool], error) {
	return Compare(a, b, in, func(ord int) bool { return ord >= 0 })
}

// Eq compares a == b time-wise.
func Eq[T Value](a, b *Signal[T], in Interpolation) (*Signal[bool], error) {
	return Compare(a, b, in, func(ord int) bool { return ord == 0 })
}

// Ne compares a != b time-wise.
func Ne[T Value](a, b *Signal[T], in Interpolation) (*Signal[bool], error) {
	return Compare(a, b, in, func(ord int) bool { return ord != 0 })
}
