package signal

import (
	"math"
)

// Cast converts a numeric signal to another numeric sample type with a
// per-sample checked conversion. A single unrepresentable sample (NaN or
// out-of-range for an integer target, negative for an unsigned target)
// promotes the whole cast to ErrInvalidCast.
//
// Complexity: O(n).
func Cast[U Num, T Num](s *Signal[T]) (*Signal[U], error) {
	switch s.kind {
	case KindEmpty:
		return New[U](), nil
	case KindConstant:
		v, ok := convertNum[U](s.constant)
		if !ok {
			return nil, ErrInvalidCast
		}

		return NewConstant(v), nil
	default:
		out := NewWithCapacity[U](len(s.times))
		for i, t := range s.times {
			v, ok := convertNum[U](s.values[i])
			if !ok {
				return nil, ErrInvalidCast
			}
			out.times = append(out.times, t)
			out.values = append(out.values, v)
		}

		return out, nil
	}
}

// convertNum converts a single numeric value between the supported sample
// types, truncating float-to-integer conversions toward zero.
func convertNum[U Num, T Num](v T) (U, bool) {
	var zero U
	switch x := any(v).(type) {
	case int64:
		switch any(zero).(type) {
		case int64:
			return any(x).(U), true
		case uint64:
			if x < 0 {
				return zero, false
			}

			return any(uint64(x)).(U), true
		default:
			return any(float64(x)).(U), true
		}
	case uint64:
		switch any(zero).(type) {
		case int64:
			if x > math.MaxInt64 {
				return zero, false
			}

			return any(int64(x)).(U), true
		case uint64:
			return any(x).(U), true
		default:
			return any(float64(x)).(U), true
		}
	default:
		f := any(v).(float64)
		switch any(zero).(type) {
		case int64:
			if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return zero, false
			}

			return any(int64(f)).(U), true
		case uint64:
			if math.IsNaN(f) || f < 0 || f >= math.MaxUint64 {
				return zero, false
			}

			return any(uint64(f)).(U), true
		default:
			return any(f).(U), true
		}
	}
}
