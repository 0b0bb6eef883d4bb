package signal

import (
	"time"
)

// ShiftLeft moves the signal earlier in time by delta.
//
// Samples before delta are dropped. If samples remain and the first
// remaining time strictly exceeds delta, a sample at time zero is prepended
// with the value of the original signal interpolated at delta (step-wise
// methods may extrapolate here; Linear may not, in which case no sample is
// prepended). The remaining time points become t - delta.
//
// Empty and constant signals are returned as fresh clones.
//
// Complexity: O(n).
func ShiftLeft[T Value](s *Signal[T], delta time.Duration, in Interpolation) *Signal[T] {
	if s.kind != KindSampled {
		return s.Clone()
	}

	// First index with t >= delta.
	idx, _ := s.search(delta)
	if idx == len(s.times) {
		// Every sample was dropped.
		return New[T]()
	}

	out := NewWithCapacity[T](len(s.times) - idx + 1)
	if s.times[idx] > delta {
		// The shifted signal would not start at zero: reconstruct the value
		// at delta if the interpolation method allows it.
		if v, ok := s.InterpolateAt(delta, in); ok {
			out.times = append(out.times, 0)
			out.values = append(out.values, v)
		}
	}
	for i := idx; i < len(s.times); i++ {
		out.times = append(out.times, s.times[i]-delta)
		out.values = append(out.values, s.values[i])
	}

	return out
}

// ShiftRight moves the signal later in time by delta, adding delta to every
// time point. Empty and constant signals are returned as fresh clones.
//
// Complexity: O(n).
func ShiftRight[T Value](s *Signal[T], delta time.Duration) *Signal[T] {
	if s.kind != KindSampled {
		return s.Clone()
	}

	out := NewWithCapacity[T](len(s.times))
	for i, t := range s.times {
		out.times = append(out.times, t+delta)
		out.values = append(out.values, s.values[i])
	}

	return out
}
