package signal_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// TestTryFromSamples_Monotonic verifies that construction enforces strictly
// increasing time points, duplicates included.
func TestTryFromSamples_Monotonic(t *testing.T) {
	_, err := signal.TryFromSamples([]signal.Sample[float64]{
		{Time: secs(1), Value: 1.0},
		{Time: secs(0.5), Value: 2.0},
	})
	assert.ErrorIs(t, err, signal.ErrNonMonotonicSignal, "out-of-order samples must be rejected")

	_, err = signal.TryFromSamples([]signal.Sample[float64]{
		{Time: secs(1), Value: 1.0},
		{Time: secs(1), Value: 2.0},
	})
	assert.ErrorIs(t, err, signal.ErrNonMonotonicSignal, "equal timestamps must be rejected")

	sig, err := signal.TryFromSamples([]signal.Sample[float64]{
		{Time: secs(0), Value: 1.0},
		{Time: secs(1), Value: 2.0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sig.Len(), "both samples must be stored")
	assert.Equal(t, signal.KindSampled, sig.Kind())
}

// TestPush_Errors verifies the push contract on each signal variant.
func TestPush_Errors(t *testing.T) {
	empty := signal.New[int64]()
	assert.ErrorIs(t, empty.Push(secs(1), 1), signal.ErrInvalidPushToSignal, "push on Empty must fail")

	constant := signal.NewConstant[int64](7)
	assert.ErrorIs(t, constant.Push(secs(1), 1), signal.ErrInvalidPushToSignal, "push on Constant must fail")

	sampled := signal.NewWithCapacity[int64](2)
	require.NoError(t, sampled.Push(secs(1), 10))
	assert.ErrorIs(t, sampled.Push(secs(1), 11), signal.ErrNonMonotonicSignal, "equal time must fail")
	assert.ErrorIs(t, sampled.Push(secs(0.5), 11), signal.ErrNonMonotonicSignal, "earlier time must fail")
	assert.Equal(t, 1, sampled.Len(), "failed pushes must leave the signal unchanged")
	require.NoError(t, sampled.Push(secs(2), 11), "strictly later time must succeed")
}

// TestAt verifies exact-sample lookup semantics.
func TestAt(t *testing.T) {
	sig := floatSig(t, [2]float64{0, 1.5}, [2]float64{1, 2.5}, [2]float64{2, 3.5})

	v, ok := sig.At(secs(1))
	assert.True(t, ok, "stored sample must be found")
	assert.Equal(t, 2.5, v)

	_, ok = sig.At(secs(0.5))
	assert.False(t, ok, "At must not interpolate between samples")

	_, ok = sig.At(secs(3))
	assert.False(t, ok, "At must not extrapolate past the domain")

	constant := signal.NewConstant(9.0)
	v, ok = constant.At(secs(123))
	assert.True(t, ok, "a constant signal is defined everywhere")
	assert.Equal(t, 9.0, v)

	_, ok = signal.New[float64]().At(secs(0))
	assert.False(t, ok, "an empty signal is defined nowhere")
}

// TestIsEmpty verifies that a zero-length sampled signal is semantically
// empty.
func TestIsEmpty(t *testing.T) {
	assert.True(t, signal.New[bool]().IsEmpty())
	assert.True(t, signal.NewWithCapacity[bool](4).IsEmpty(), "zero-length Sampled is Empty")
	assert.False(t, signal.NewConstant(true).IsEmpty())
	assert.False(t, floatSig(t, [2]float64{0, 1}).IsEmpty())
}

// TestStartEndTime verifies domain reporting.
func TestStartEndTime(t *testing.T) {
	sig := floatSig(t, [2]float64{0.5, 1}, [2]float64{2, 2})

	start, ok := sig.StartTime()
	assert.True(t, ok)
	assert.Equal(t, secs(0.5), start)

	end, ok := sig.EndTime()
	assert.True(t, ok)
	assert.Equal(t, secs(2), end)

	_, ok = signal.NewConstant(1.0).StartTime()
	assert.False(t, ok, "a constant signal has an unbounded domain")

	_, ok = signal.New[float64]().EndTime()
	assert.False(t, ok, "an empty signal has no domain")
}

// TestClone verifies that clones do not alias the original's buffers.
func TestClone(t *testing.T) {
	orig := floatSig(t, [2]float64{0, 1}, [2]float64{1, 2})
	clone := orig.Clone()
	require.NoError(t, clone.Push(secs(5), 9))

	assert.Equal(t, 2, orig.Len(), "pushing to a clone must not grow the original")
	assert.Equal(t, 3, clone.Len())
}
