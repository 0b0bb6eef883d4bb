package signal

import (
	"time"
)

// SyncPoints returns the list of time points at which two signals must be
// sampled to synchronize them for a binary operation.
//
//   - either signal empty        -> ok == false;
//   - two constants              -> an empty list (no sampling needed);
//   - a constant and a sampled   -> the sampled signal's time points;
//   - two sampled signals        -> the sorted, deduplicated merge of both
//     time vectors, clipped to the intersection of their closed domains.
//
// The result is always sorted and free of duplicates, and is symmetric in
// its arguments.
//
// Complexity: O(n + m).
func SyncPoints[T Value](a, b *Signal[T]) ([]time.Duration, bool) {
	if a.IsEmpty() || b.IsEmpty() {
		return nil, false
	}
	switch {
	case a.kind == KindConstant && b.kind == KindConstant:
		return []time.Duration{}, true
	case a.kind == KindConstant:
		return b.Times(), true
	case b.kind == KindConstant:
		return a.Times(), true
	}

	// Both sampled: the output signal can only be defined where both inputs
	// are, so clip the merge to the domain intersection.
	lo := max(a.times[0], b.times[0])
	hi := min(a.times[len(a.times)-1], b.times[len(b.times)-1])

	merged := make([]time.Duration, 0, len(a.times)+len(b.times))
	i, j := 0, 0
	for i < len(a.times) || j < len(b.times) {
		var t time.Duration
		switch {
		case j == len(b.times) || (i < len(a.times) && a.times[i] <= b.times[j]):
			t = a.times[i]
			if i < len(a.times) && j < len(b.times) && a.times[i] == b.times[j] {
				j++
			}
			i++
		default:
			t = b.times[j]
			j++
		}
		if t < lo || t > hi {
			continue
		}
		if n := len(merged); n > 0 && merged[n-1] == t {
			continue
		}
		merged = append(merged, t)
	}

	return merged, true
}

// SyncWithIntersection extends SyncPoints with the time point of every
// crossing between the two signals: wherever the ordering of the signals
// flips between two consecutive sync points, the intersection time (computed
// with the given interpolation method) is inserted between them.
//
// The result is nil when either signal is empty. Consecutive duplicate times
// are collapsed. Comparing incomparable values (NaN) yields
// ErrInvalidOperation.
//
// Complexity: O((n + m) log(n + m)).
func (s *Signal[T]) SyncWithIntersection(other *Signal[T], in Interpolation) ([]time.Duration, error) {
	syncPoints, ok := SyncPoints(s, other)
	if !ok {
		return nil, nil
	}

	// Upper limit: one crossing between each pair of consecutive sync points.
	out := make([]time.Duration, 0, 2*len(syncPoints))
	var (
		lastTime time.Duration
		lastOrd  int
		haveLast bool
	)
	for _, t := range syncPoints {
		lhs, lok := s.InterpolateAt(t, in)
		rhs, rok := other.InterpolateAt(t, in)
		if !lok || !rok {
			// Sync points lie inside both domains, so the only failure mode
			// left is an incomparable reconstruction.
			return nil, ErrInvalidOperation
		}
		ord, cmpOK := partialCmp(lhs, rhs)
		if !cmpOK {
			return nil, ErrInvalidOperation
		}

		// A crossing happened iff the previous and current orderings are
		// strict opposites.
		if haveLast && lastOrd*ord < 0 {
			a := neighborhoodAt(s, lastTime, t, in)
			b := neighborhoodAt(other, lastTime, t, in)
			if crossing, found := FindIntersection(a, b, in); found {
				out = append(out, crossing.Time)
			}
		}
		out = append(out, t)
		lastTime, lastOrd, haveLast = t, ord, true
	}

	return dedupDurations(out), nil
}

// neighborhoodAt builds the two-point segment of sig over [t0, t1] by
// interpolating at both ends.
func neighborhoodAt[T Value](sig *Signal[T], t0, t1 time.Duration, in Interpolation) Segment[T] {
	first, _ := sig.InterpolateAt(t0, in)
	second, _ := sig.InterpolateAt(t1, in)

	return Segment[T]{
		First:  Sample[T]{Time: t0, Value: first},
		Second: Sample[T]{Time: t1, Value: second},
	}
}

// dedupDurations collapses consecutive duplicates in place.
func dedupDurations(times []time.Duration) []time.Duration {
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
