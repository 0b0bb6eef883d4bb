package monitor_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stlmon/monitor"
	"github.com/katalvlaran/stlmon/signal"
)

// secs converts a float second count to a Duration for test fixtures.
func secs(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// floatSig builds a sampled float64 signal from (time, value) pairs.
func floatSig(t *testing.T, pts ...[2]float64) *signal.Signal[float64] {
	t.Helper()
	samples := make([]signal.Sample[float64], len(pts))
	for i, p := range pts {
		samples[i] = signal.Sample[float64]{Time: secs(p[0]), Value: p[1]}
	}
	sig, err := signal.TryFromSamples(samples)
	require.NoError(t, err, "fixture samples must be monotonic")

	return sig
}

// intSig builds a sampled int64 signal from (second, value) pairs.
func intSig(t *testing.T, times []float64, values []int64) *signal.Signal[int64] {
	t.Helper()
	require.Equal(t, len(times), len(values))
	samples := make([]signal.Sample[int64], len(times))
	for i := range times {
		samples[i] = signal.Sample[int64]{Time: secs(times[i]), Value: values[i]}
	}
	sig, err := signal.TryFromSamples(samples)
	require.NoError(t, err)

	return sig
}

// boolSig builds a sampled bool signal from (second, value) pairs.
func boolSig(t *testing.T, times []float64, values []bool) *signal.Signal[bool] {
	t.Helper()
	require.Equal(t, len(times), len(values))
	samples := make([]signal.Sample[bool], len(times))
	for i := range times {
		samples[i] = signal.Sample[bool]{Time: secs(times[i]), Value: values[i]}
	}
	sig, err := signal.TryFromSamples(samples)
	require.NoError(t, err)

	return sig
}

// traceOf builds a MapTrace from named signals.
func traceOf(bindings map[string]monitor.AnySignal) *monitor.MapTrace {
	tr := monitor.NewMapTrace()
	for name, sig := range bindings {
		tr.Set(name, sig)
	}

	return tr
}

// assertApproxRobustness compares a robustness signal against expected
// (second, value) pairs with nanosecond-scale time tolerance.
func assertApproxRobustness(t *testing.T, sig *signal.Signal[float64], want ...[2]float64) {
	t.Helper()
	got := sig.Samples()
	require.Len(t, got, len(want), "sample count mismatch: got %v", got)
	for i, w := range want {
		assert.InDelta(t, w[0], got[i].Time.Seconds(), 2e-9, "time of sample %d", i)
		assert.InDelta(t, w[1], got[i].Value, 1e-8, "value of sample %d", i)
	}
}

// assertApproxEqualSignals compares two robustness signals sample-wise.
func assertApproxEqualSignals(t *testing.T, got, want *signal.Signal[float64]) {
	t.Helper()
	wantSamples := want.Samples()
	gotSamples := got.Samples()
	require.Len(t, gotSamples, len(wantSamples), "sample counts differ: %v vs %v", gotSamples, wantSamples)
	for i := range wantSamples {
		assert.InDelta(t, wantSamples[i].Time.Seconds(), gotSamples[i].Time.Seconds(), 2e-9, "time of sample %d", i)
		assert.InDelta(t, wantSamples[i].Value, gotSamples[i].Value, 1e-8, "value of sample %d", i)
	}
}
