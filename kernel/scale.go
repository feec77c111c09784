// Package kernel implements the MODWT filter scaling and convolution
// primitives shared by the modwt, batch, and denoise packages: scaling and
// per-level upsampling of catalog filters, scalar/SIMD/specialized
// convolution kernels, a selection policy between them, and a
// structure-of-arrays kernel for batches of equal-length signals.
package kernel

import (
	"fmt"
	"math"
	"sync"

	vectorwave "github.com/Prophetizo/VectorWave"
)

const invSqrt2 = 1 / math.Sqrt2

// ScaleLevel1 scales a catalog filter by 1/sqrt(2) for use at decomposition
// level 1. It allocates a new slice; f is never mutated.
func ScaleLevel1(f []float64) []float64 {
	out := make([]float64, len(f))
	for i, v := range f {
		out[i] = v * invSqrt2
	}
	return out
}

// UpsampleAndScale implements the pyramid/cascade MODWT filter convention:
// at level j (1-indexed) the filter used is the ORIGINAL catalog filter with
// 2^(j-1)-1 zeros inserted between consecutive taps, scaled by 1/sqrt(2).
// The scale factor is 1/sqrt(2) at every level, not 2^(-j/2); the geometric
// decay across levels instead falls out of convolving with the previous
// level's approximation, which is itself a scaled signal.
//
// level must be >= 1. UpsampleAndScale(f, 1) is equivalent to ScaleLevel1(f).
func UpsampleAndScale(f []float64, level int) ([]float64, error) {
	if level < 1 {
		return nil, fmt.Errorf("kernel: level %d must be >= 1: %w", level, vectorwave.ErrInvalidArgument)
	}
	if level == 1 {
		return ScaleLevel1(f), nil
	}

	gap := 1 << (level - 1) // 2^(level-1)
	zerosBetween := gap - 1
	l := len(f)
	out := make([]float64, (l-1)*gap+1)
	for i, v := range f {
		out[i*(zerosBetween+1)] = v * invSqrt2
	}
	return out, nil
}

// FilterCache caches UpsampleAndScale results keyed by (wavelet name,
// filter identity, level), since a multi-level decomposition repeatedly
// needs the same upsampled filter across many calls at a fixed level.
type FilterCache struct {
	m sync.Map // map[cacheKey][]float64
}

type cacheKey struct {
	name  string
	which byte // 'l' (low) or 'h' (high)
	level int
}

// NewFilterCache returns an empty, concurrency-safe cache for upsampled
// filters. A single cache is meant to be shared across the calls that make
// up one multi-level decomposition or reconstruction.
func NewFilterCache() *FilterCache {
	return &FilterCache{}
}

// Upsampled returns the cached (or freshly computed and cached) upsampled,
// scaled filter for the given wavelet name, low/high selector, and level.
func (c *FilterCache) Upsampled(waveletName string, which byte, level int, f []float64) ([]float64, error) {
	key := cacheKey{waveletName, which, level}
	if v, ok := c.m.Load(key); ok {
		return v.([]float64), nil
	}
	scaled, err := UpsampleAndScale(f, level)
	if err != nil {
		return nil, err
	}
	c.m.Store(key, scaled)
	return scaled, nil
}

// Truncate clips f to at most n taps, the behavior used when an upsampled
// filter would otherwise be longer than the signal it's convolved with.
// Truncated filters are an approximation the original MODWT algorithm also
// makes at deep decomposition levels on short signals.
func Truncate(f []float64, n int) []float64 {
	if len(f) <= n {
		return f
	}
	return f[:n]
}
