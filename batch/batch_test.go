package batch

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prophetizo/VectorWave/catalog"
	"github.com/Prophetizo/VectorWave/modwt"
)

func randomSignals(b, n int, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	out := make([][]float64, b)
	for i := range out {
		x := make([]float64, n)
		for j := range x {
			x[j] = r.NormFloat64()
		}
		out[i] = x
	}
	return out
}

// Scenario: B=64, N=333 batch forward/inverse round trip. Agreement with
// the sequential per-signal path is checked by
// TestForwardBatch_AgreesWithSequential.
func TestForwardInverseBatch_B64N333(t *testing.T) {
	w, err := catalog.Get("db4")
	require.NoError(t, err)
	signals := randomSignals(64, 333, 3)

	results, err := ForwardBatch(w, modwt.Periodic, signals)
	require.NoError(t, err)
	require.Len(t, results, 64)

	recovered, err := InverseBatch(w, modwt.Periodic, results)
	require.NoError(t, err)
	require.Len(t, recovered, 64)

	for i := range signals {
		assert.InDeltaSlice(t, signals[i], recovered[i], 1e-8)
	}
}

func TestForwardBatch_AgreesWithSequential(t *testing.T) {
	w, err := catalog.Get("db4")
	require.NoError(t, err)
	signals := randomSignals(16, 256, 9)

	batched, err := ForwardBatch(w, modwt.Periodic, signals)
	require.NoError(t, err)

	sequential, err := modwt.ForwardBatch(w, modwt.Periodic, signals)
	require.NoError(t, err)

	for i := range signals {
		assert.InDeltaSlice(t, sequential[i].Approx, batched[i].Approx, 1e-9)
		assert.InDeltaSlice(t, sequential[i].Detail, batched[i].Detail, 1e-9)
	}
}

func TestForwardBatch_SmallBatchDelegatesToSequential(t *testing.T) {
	w, err := catalog.Get("haar")
	require.NoError(t, err)
	signals := randomSignals(2, 16, 1) // below both SoA floors

	results, err := ForwardBatch(w, modwt.Periodic, signals)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestForwardBatch_MismatchedLengths(t *testing.T) {
	w, err := catalog.Get("haar")
	require.NoError(t, err)
	signals := [][]float64{
		make([]float64, 64),
		make([]float64, 63),
	}
	_, err = ForwardBatch(w, modwt.Periodic, signals)
	assert.Error(t, err)
}

func TestForwardBatchParallel_MatchesSequentialBatch(t *testing.T) {
	w, err := catalog.Get("db4")
	require.NoError(t, err)
	signals := randomSignals(40, 128, 21)

	sequential, err := ForwardBatch(w, modwt.Periodic, signals)
	require.NoError(t, err)

	parallel, err := ForwardBatchParallel(w, modwt.Periodic, signals)
	require.NoError(t, err)

	require.Len(t, parallel, len(sequential))
	for i := range sequential {
		assert.InDeltaSlice(t, sequential[i].Approx, parallel[i].Approx, 1e-9)
		assert.InDeltaSlice(t, sequential[i].Detail, parallel[i].Detail, 1e-9)
	}
}
