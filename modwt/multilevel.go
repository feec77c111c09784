package modwt

import (
	"fmt"

	"github.com/Prophetizo/VectorWave/catalog"
	"github.com/Prophetizo/VectorWave/kernel"
	vectorwave "github.com/Prophetizo/VectorWave"
)

// MaxDecompositionLevels caps how many levels Decompose will compute even
// when the signal is long enough to support more; matches the original
// implementation's ceiling to keep upsampled filters from growing without
// bound on pathologically long signals.
const MaxDecompositionLevels = 10

// MaxLevels computes the largest J for which a MODWT decomposition with a
// filter of length filterLen remains meaningful for a signal of length
// signalLen: the largest J such that (filterLen-1)*2^(J-1)+1 does not
// exceed signalLen, capped at MaxDecompositionLevels. This bounds J by "does the
// upsampled filter's support still fit the signal" rather than the
// textbook Jmax = floor(log2(signalLen/(filterLen-1)+1)) formula; for
// signalLen=777, filterLen=8 the two disagree (7 here vs. 6 for the
// textbook formula). The looser, support-based bound is intentional: it is
// the actual constraint Decompose's cascade needs, and rejecting levels
// the cascade could still compute correctly would be an arbitrary
// restriction, not a correctness requirement.

func MaxLevels(signalLen, filterLen int) int {
	if signalLen <= 0 || filterLen <= 1 {
		return 0
	}
	levels := 0
	for levels < MaxDecompositionLevels {
		// (filterLen-1) * 2^levels + 1 <= signalLen ?
		span := (filterLen - 1) << levels
		if span < 0 || span+1 > signalLen {
			break
		}
		levels++
	}
	return levels
}

// Decompose runs a J-level MODWT decomposition of x using the pyramid/
// cascade filter convention (see kernel.UpsampleAndScale): at each level
// the ORIGINAL catalog filter is upsampled and scaled, then convolved with
// the previous level's approximation.
func Decompose(w catalog.Wavelet, mode BoundaryMode, x []float64, levels int) (MultiLevelResult, error) {
	if err := validateWaveletAndSignal(w, x); err != nil {
		return MultiLevelResult{}, err
	}
	if levels < 1 {
		return MultiLevelResult{}, fmt.Errorf("modwt: levels %d must be >= 1: %w", levels, vectorwave.ErrInvalidArgument)
	}
	maxLevels := MaxLevels(len(x), w.FilterLength())
	if levels > maxLevels {
		return MultiLevelResult{}, fmt.Errorf("modwt: levels %d exceeds max %d for signal length %d and filter length %d: %w", levels, maxLevels, len(x), w.FilterLength(), vectorwave.ErrInvalidArgument)
	}

	n := len(x)
	cache := kernel.NewFilterCache()
	details := make([][]float64, levels)
	approx := append([]float64(nil), x...)

	for level := 1; level <= levels; level++ {
		h0, err := cache.Upsampled(w.Name, 'l', level, w.H0)
		if err != nil {
			return MultiLevelResult{}, err
		}
		h1, err := cache.Upsampled(w.Name, 'h', level, w.H1)
		if err != nil {
			return MultiLevelResult{}, err
		}
		h0 = kernel.Truncate(h0, n)
		h1 = kernel.Truncate(h1, n)

		nextApprox := make([]float64, n)
		detail := make([]float64, n)
		kernel.Convolve(nextApprox, approx, h0, mode.zeroPad())
		kernel.Convolve(detail, approx, h1, mode.zeroPad())

		details[level-1] = detail
		approx = nextApprox
	}

	return MultiLevelResult{Details: details, Approx: approx, Levels: levels}, nil
}

// Reconstruct inverts a full MultiLevelResult back to the original signal,
// cascading from the coarsest level's approximation back down through
// every detail level.
func Reconstruct(w catalog.Wavelet, mode BoundaryMode, r MultiLevelResult) ([]float64, error) {
	return ReconstructFromLevel(w, mode, r, r.Levels)
}

// ReconstructFromLevel reconstructs starting from the approximation at
// startLevel (which must be <= r.Levels), cascading the detail levels
// startLevel down to 1 back in. Passing startLevel == r.Levels is
// equivalent to Reconstruct.
func ReconstructFromLevel(w catalog.Wavelet, mode BoundaryMode, r MultiLevelResult, startLevel int) ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if startLevel < 1 || startLevel > r.Levels || startLevel > len(r.Details) {
		return nil, fmt.Errorf("modwt: startLevel %d out of range [1,%d]: %w", startLevel, r.Levels, vectorwave.ErrInvalidArgument)
	}
	if len(r.Approx) == 0 {
		return nil, fmt.Errorf("modwt: empty approximation: %w", vectorwave.ErrInvalidArgument)
	}
	n := len(r.Approx)

	cache := kernel.NewFilterCache()
	approx := append([]float64(nil), r.Approx...)
	zeroPad := mode.zeroPad()

	for level := startLevel; level >= 1; level-- {
		g0, err := cache.Upsampled(w.Name, 'l', level, w.G0)
		if err != nil {
			return nil, err
		}
		g1, err := cache.Upsampled(w.Name, 'h', level, w.G1)
		if err != nil {
			return nil, err
		}
		g0 = kernel.Truncate(g0, n)
		g1 = kernel.Truncate(g1, n)

		detail := r.Details[level-1]
		if len(detail) != n {
			return nil, fmt.Errorf("modwt: level %d detail length %d, want %d: %w", level, len(detail), n, vectorwave.ErrInvalidArgument)
		}

		recon := make([]float64, n)
		tmp := make([]float64, n)
		kernel.Correlate(recon, approx, g0, zeroPad)
		kernel.Correlate(tmp, detail, g1, zeroPad)
		for i := range recon {
			recon[i] += tmp[i]
		}
		if mode == Periodic && w.GroupDelay != 0 {
			shiftLeft(recon, w.GroupDelay)
		}
		approx = recon
	}

	return approx, nil
}

// ReconstructBand reconstructs only the contribution of detail levels in
// [minLevel, maxLevel] (the approximation is treated as zero), useful for
// isolating a frequency band without a full reconstruction. minLevel and
// maxLevel are both inclusive and 1-indexed.
func ReconstructBand(w catalog.Wavelet, mode BoundaryMode, r MultiLevelResult, minLevel, maxLevel int) ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if minLevel < 1 || maxLevel > r.Levels || minLevel > maxLevel {
		return nil, fmt.Errorf("modwt: band [%d,%d] out of range [1,%d]: %w", minLevel, maxLevel, r.Levels, vectorwave.ErrInvalidArgument)
	}
	n := len(r.Approx)
	zeroed := MultiLevelResult{
		Levels: r.Levels,
		Approx: make([]float64, n),
		Details: func() [][]float64 {
			d := make([][]float64, len(r.Details))
			for i := range d {
				if i+1 >= minLevel && i+1 <= maxLevel {
					d[i] = r.Details[i]
				} else {
					d[i] = make([]float64, n)
				}
			}
			return d
		}(),
	}
	return Reconstruct(w, mode, zeroed)
}
