package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vectorwave "github.com/Prophetizo/VectorWave"
	"github.com/Prophetizo/VectorWave/internal/testutil"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		wavelet    string
		wantKind   WaveletKind
		wantLength int
	}{
		{"haar", "haar", KindOrthogonal, 2},
		{"db2", "db2", KindOrthogonal, 4},
		{"db4", "db4", KindOrthogonal, 8},
		{"db6", "db6", KindOrthogonal, 12},
		{"db8", "db8", KindOrthogonal, 16},
		{"db10", "db10", KindOrthogonal, 20},
		{"bior1.3", "bior1.3", KindBiorthogonal, 6},
		{"bior2.2", "bior2.2", KindBiorthogonal, 5},
		{"bior2.4", "bior2.4", KindBiorthogonal, 9},
		{"bior3.3", "bior3.3", KindBiorthogonal, 8},
		{"bior4.4", "bior4.4", KindBiorthogonal, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Get(tt.wavelet)
			require.NoError(t, err)
			assert.Equal(t, tt.wavelet, w.Name)
			assert.Equal(t, tt.wantKind, w.Kind)
			assert.Len(t, w.H0, tt.wantLength)
			assert.NoError(t, w.Validate())
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("not-a-wavelet")
	require.Error(t, err)
	assert.True(t, errors.Is(err, vectorwave.ErrUnknownWavelet))
}

func TestHaarFilters(t *testing.T) {
	w, err := Get("haar")
	require.NoError(t, err)

	inv := 1 / math.Sqrt2
	assert.InDeltaSlice(t, []float64{inv, inv}, w.H0, 1e-12)
	assert.InDeltaSlice(t, []float64{inv, -inv}, w.H1, 1e-12)
	assert.Equal(t, w.H0, w.G0)
	assert.Equal(t, w.H1, w.G1)
}

// Orthogonal wavelets' low-pass filters must sum to sqrt(2) (unit DC gain
// once MODWT-scaled by 1/sqrt(2)) and their high-pass filters to 0.
func TestOrthogonalDCGain(t *testing.T) {
	for _, w := range Orthogonal() {
		t.Run(w.Name, func(t *testing.T) {
			testutil.AssertNoNaNOrInf(t, w.H0)
			testutil.AssertNoNaNOrInf(t, w.H1)
			testutil.AssertDCGain(t, w.H0, math.Sqrt2, 1e-9)
			testutil.AssertDCGain(t, w.H1, 0, 1e-9)
		})
	}
}

func TestOrthogonalSelfDual(t *testing.T) {
	for _, w := range Orthogonal() {
		t.Run(w.Name, func(t *testing.T) {
			assert.Equal(t, w.H0, w.G0)
			assert.Equal(t, w.H1, w.G1)
			assert.Equal(t, 0, w.GroupDelay)
		})
	}
}

func TestBiorthogonalIndependentPairs(t *testing.T) {
	for _, w := range Biorthogonal() {
		t.Run(w.Name, func(t *testing.T) {
			require.NoError(t, w.Validate())
			assert.NotZero(t, w.GroupDelay)
			assert.Len(t, w.H1, len(w.G0))
			assert.Len(t, w.G1, len(w.H0))
		})
	}
}

func TestOrthogonalAndBiorthogonalAreDisjointAndSorted(t *testing.T) {
	orth := Orthogonal()
	bior := Biorthogonal()
	assert.Len(t, orth, 6)
	assert.Len(t, bior, 5)

	for i := 1; i < len(orth); i++ {
		assert.Less(t, orth[i-1].Name, orth[i].Name)
	}
	for i := 1; i < len(bior); i++ {
		assert.Less(t, bior[i-1].Name, bior[i].Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 11)
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestWaveletValidate_EmptyFilter(t *testing.T) {
	w := Wavelet{Name: "broken", Kind: KindOrthogonal}
	err := w.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, vectorwave.ErrInvalidArgument))
}

func TestWaveletValidate_ContinuousKind(t *testing.T) {
	w := Wavelet{Name: "morlet", Kind: KindContinuous}
	err := w.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, vectorwave.ErrInvalidArgument))
}

func TestFilterLength(t *testing.T) {
	w, err := Get("bior2.4")
	require.NoError(t, err)
	assert.Equal(t, 9, w.FilterLength())
}
