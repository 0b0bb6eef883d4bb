package monitor

import (
	"sort"
	"time"

	"github.com/katalvlaran/stlmon/signal"
)

// MonoWedge is a monotonic deque over timed samples: the streaming min/max
// filter of Lemire, in the adaptation of Donzé, Ferrère and Maler for
// piecewise-linear signals.
//
// Invariants:
//   - entry times are strictly increasing from front to back;
//   - entry values are strictly monotone under the wedge's comparator
//     (decreasing for a max-wedge, increasing for a min-wedge).
//
// Alongside the value deque, the wedge keeps the ordered set of all offered
// time points. The filter's output is indexed by every candidate query time,
// not just the times that survive in the deque, so Front pairs the oldest
// live offered time with the value currently valid for it.
//
// A full windowed pass costs amortized O(1) per sample (each entry is pushed
// and popped at most once) plus an O(log n) partition search per update.
type MonoWedge[T signal.Num] struct {
	entries []wedgeEntry[T]
	times   []time.Duration
	cmp     func(a, b T) bool
}

type wedgeEntry[T signal.Num] struct {
	time  time.Duration
	value T
}

// NewMinWedge creates a wedge whose Front tracks the windowed minimum.
func NewMinWedge[T signal.Num]() *MonoWedge[T] {
	return &MonoWedge[T]{cmp: func(a, b T) bool { return a < b }}
}

// NewMaxWedge creates a wedge whose Front tracks the windowed maximum.
func NewMaxWedge[T signal.Num]() *MonoWedge[T] {
	return &MonoWedge[T]{cmp: func(a, b T) bool { return a > b }}
}

// Update offers a new sample to the wedge. The time must strictly exceed
// every previously offered time; a violation is an internal-invariant bug in
// the caller and panics.
func (w *MonoWedge[T]) Update(t time.Duration, value T) {
	if n := len(w.times); n > 0 && w.times[n-1] >= t {
		panic("monitor: wedge samples must have strictly increasing times")
	}

	// Keep the prefix of entries that still dominate the new value, drop the
	// rest, and append the new sample.
	keep := sort.Search(len(w.entries), func(i int) bool {
		return !w.cmp(w.entries[i].value, value)
	})
	w.entries = append(w.entries[:keep], wedgeEntry[T]{time: t, value: value})
	w.times = append(w.times, t)
}

// Front reports the oldest live offered time point together with the extreme
// value currently valid for it. ok is false on an empty wedge.
func (w *MonoWedge[T]) Front() (time.Duration, T, bool) {
	if len(w.times) == 0 || len(w.entries) == 0 {
		var zero T

		return 0, zero, false
	}

	return w.times[0], w.entries[0].value, true
}

// PurgeBefore drops every offered time and every entry with time < t.
func (w *MonoWedge[T]) PurgeBefore(t time.Duration) {
	firstTime := sort.Search(len(w.times), func(i int) bool { return w.times[i] >= t })
	w.times = w.times[firstTime:]

	firstEntry := sort.Search(len(w.entries), func(i int) bool { return w.entries[i].time >= t })
	w.entries = w.entries[firstEntry:]
}
