package modwt

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prophetizo/VectorWave/catalog"
)

func randomSignal(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = r.NormFloat64()
	}
	return x
}

// P1: for every orthogonal wavelet and Periodic mode, Inverse(Forward(x))
// recovers x to within 1e-9.
func TestForwardInverseRoundTrip_OrthogonalPeriodic(t *testing.T) {
	for _, w := range catalog.Orthogonal() {
		t.Run(w.Name, func(t *testing.T) {
			x := randomSignal(200, 7)
			r, err := Forward(w, Periodic, x)
			require.NoError(t, err)
			got, err := Inverse(w, Periodic, r)
			require.NoError(t, err)
			assert.InDeltaSlice(t, x, got, 1e-9)
		})
	}
}

// P2: biorthogonal wavelets round-trip exactly under Periodic (via
// GroupDelay compensation).
func TestForwardInverseRoundTrip_BiorthogonalPeriodic(t *testing.T) {
	for _, w := range catalog.Biorthogonal() {
		t.Run(w.Name, func(t *testing.T) {
			x := randomSignal(200, 11)
			r, err := Forward(w, Periodic, x)
			require.NoError(t, err)
			got, err := Inverse(w, Periodic, r)
			require.NoError(t, err)
			assert.InDeltaSlice(t, x, got, 1e-6)
		})
	}
}

// Orthogonal wavelets under ZeroPadding round-trip exactly everywhere
// except the last L-1 samples, whose synthesis sums would need coefficients
// past the end of the signal (no phase compensation is involved since
// GroupDelay is 0).
func TestForwardInverseRoundTrip_OrthogonalZeroPadding(t *testing.T) {
	for _, w := range catalog.Orthogonal() {
		t.Run(w.Name, func(t *testing.T) {
			x := randomSignal(200, 23)
			r, err := Forward(w, ZeroPadding, x)
			require.NoError(t, err)
			got, err := Inverse(w, ZeroPadding, r)
			require.NoError(t, err)
			exact := len(x) - (w.FilterLength() - 1)
			assert.InDeltaSlice(t, x[:exact], got[:exact], 1e-9)
		})
	}
}

// Scenario: Haar N=7. Verifies the scalar kernel handles signals shorter
// than the vector floor and that the result lengths match N.
func TestHaarN7(t *testing.T) {
	w, err := catalog.Get("haar")
	require.NoError(t, err)
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	r, err := Forward(w, Periodic, x)
	require.NoError(t, err)
	assert.Len(t, r.Approx, 7)
	assert.Len(t, r.Detail, 7)

	got, err := Inverse(w, Periodic, r)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x, got, 1e-9)
}

// Scenario: DB4, N=777, J=4 multi-level round trip.
func TestDB4N777J4(t *testing.T) {
	w, err := catalog.Get("db4")
	require.NoError(t, err)
	x := randomSignal(777, 42)

	ml, err := Decompose(w, Periodic, x, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, ml.Levels)
	assert.Len(t, ml.Details, 4)
	for _, d := range ml.Details {
		assert.Len(t, d, 777)
	}
	assert.Len(t, ml.Approx, 777)

	got, err := Reconstruct(w, Periodic, ml)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x, got, 1e-8)
}

// Scenario: Bior1.3 applied to a constant signal must reproduce the
// constant exactly on reconstruction (the DC/constant component always
// survives a wavelet transform's low-pass branch) under Periodic mode.
func TestBior13ConstantSignal(t *testing.T) {
	w, err := catalog.Get("bior1.3")
	require.NoError(t, err)
	x := make([]float64, 64)
	for i := range x {
		x[i] = 3.5
	}

	r, err := Forward(w, Periodic, x)
	require.NoError(t, err)
	got, err := Inverse(w, Periodic, r)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x, got, 1e-6)
}

func TestMaxLevels(t *testing.T) {
	// db4 has filter length 8.
	assert.Equal(t, 0, MaxLevels(7, 8))
	assert.GreaterOrEqual(t, MaxLevels(777, 8), 4)
	assert.LessOrEqual(t, MaxLevels(1<<20, 8), MaxDecompositionLevels)
}

func TestDecompose_LevelsExceedsMax(t *testing.T) {
	w, err := catalog.Get("db4")
	require.NoError(t, err)
	x := randomSignal(20, 1)
	max := MaxLevels(len(x), w.FilterLength())
	_, err = Decompose(w, Periodic, x, max+1)
	assert.Error(t, err)
}

func TestDecompose_InvalidLevels(t *testing.T) {
	w, err := catalog.Get("haar")
	require.NoError(t, err)
	x := randomSignal(20, 1)
	_, err = Decompose(w, Periodic, x, 0)
	assert.Error(t, err)
}

func TestForward_SignalShorterThanFilter(t *testing.T) {
	w, err := catalog.Get("db8")
	require.NoError(t, err)
	_, err = Forward(w, Periodic, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestReconstructFromLevelMatchesReconstruct(t *testing.T) {
	w, err := catalog.Get("db4")
	require.NoError(t, err)
	x := randomSignal(512, 99)
	ml, err := Decompose(w, Periodic, x, 3)
	require.NoError(t, err)

	full, err := Reconstruct(w, Periodic, ml)
	require.NoError(t, err)
	viaHelper, err := ReconstructFromLevel(w, Periodic, ml, ml.Levels)
	require.NoError(t, err)
	assert.Equal(t, full, viaHelper)
}

func TestReconstructBand(t *testing.T) {
	w, err := catalog.Get("haar")
	require.NoError(t, err)
	x := randomSignal(256, 5)
	ml, err := Decompose(w, Periodic, x, 3)
	require.NoError(t, err)

	full, err := Reconstruct(w, Periodic, ml)
	require.NoError(t, err)

	low, err := ReconstructBand(w, Periodic, ml, 1, 1)
	require.NoError(t, err)
	mid, err := ReconstructBand(w, Periodic, ml, 2, 2)
	require.NoError(t, err)
	high, err := ReconstructBand(w, Periodic, ml, 3, 3)
	require.NoError(t, err)

	// ReconstructBand zeroes the approximation, so the full reconstruction
	// is the sum of the three detail bands plus the approximation-only part.
	approxOnly, err := Reconstruct(w, Periodic, MultiLevelResult{
		Levels:  ml.Levels,
		Approx:  ml.Approx,
		Details: [][]float64{make([]float64, len(x)), make([]float64, len(x)), make([]float64, len(x))},
	})
	require.NoError(t, err)

	sum := make([]float64, len(full))
	for i := range sum {
		sum[i] = approxOnly[i] + low[i] + mid[i] + high[i]
	}
	assert.InDeltaSlice(t, full, sum, 1e-6)
}

func TestMultiLevelResultClone(t *testing.T) {
	w, err := catalog.Get("haar")
	require.NoError(t, err)
	x := randomSignal(64, 2)
	ml, err := Decompose(w, Periodic, x, 2)
	require.NoError(t, err)

	mut := ml.Clone()
	mut.Details[0][0] = math.Inf(1)
	assert.NotEqual(t, math.Inf(1), ml.Details[0][0])
}
