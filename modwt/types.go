// Package modwt implements the single- and multi-level Maximal Overlap
// Discrete Wavelet Transform: forward decomposition, inverse
// reconstruction, and the partial-reconstruction helpers built on top of
// them.
package modwt

import (
	"fmt"

	"github.com/Prophetizo/VectorWave/catalog"
	vectorwave "github.com/Prophetizo/VectorWave"
)

// BoundaryMode selects how the transform handles samples outside the
// signal's domain.
type BoundaryMode int

const (
	// Periodic treats the signal as one period of an infinite periodic
	// sequence (circular convolution). Always round-trips to machine
	// precision, including for biorthogonal wavelets (via GroupDelay
	// compensation).
	Periodic BoundaryMode = iota

	// ZeroPadding treats samples outside [0, N) as zero. For orthogonal
	// wavelets the round trip is exact except for the last L-1 samples,
	// whose synthesis sums would need coefficients past index N-1 (read as
	// zero here); for biorthogonal wavelets edge
	// samples carry reconstruction error proportional to GroupDelay
	// (no phase compensation is applied — see package doc).
	ZeroPadding
)

func (m BoundaryMode) String() string {
	switch m {
	case Periodic:
		return "periodic"
	case ZeroPadding:
		return "zero-padding"
	default:
		return "unknown"
	}
}

func (m BoundaryMode) zeroPad() bool { return m == ZeroPadding }

// Result holds one level of MODWT coefficients: the approximation
// (low-pass) and detail (high-pass) sequences, each the same length as the
// input signal.
//
// Approx and Detail alias internal storage: ForwardPool acquires them from
// a pool.Pool, and releasing that buffer back to the pool (or acquiring it
// again elsewhere) can mutate a Result a caller is still holding. Forward
// (which passes a nil pool) always returns freshly allocated slices with no
// such aliasing. Callers that hold a Result across a later Release/Acquire
// on the same pool, or that need to hand coefficients to code outside their
// control, should take a defensive copy via ApproxCopy/DetailCopy rather
// than read the fields directly.
type Result struct {
	Approx []float64
	Detail []float64
	N      int
}

// ApproxCopy returns a defensive copy of the approximation coefficients.
func (r Result) ApproxCopy() []float64 {
	return append([]float64(nil), r.Approx...)
}

// DetailCopy returns a defensive copy of the detail coefficients.
func (r Result) DetailCopy() []float64 {
	return append([]float64(nil), r.Detail...)
}

// MultiLevelResult holds the output of a J-level MODWT decomposition.
// Details is 1-indexed by convention: Details[0] holds level-1 (finest)
// detail coefficients, Details[Levels-1] holds the coarsest. Approx holds
// the level-Levels approximation.
type MultiLevelResult struct {
	Details [][]float64
	Approx  []float64
	Levels  int
}

// MutableMultiLevelResult is a MultiLevelResult whose Details/Approx
// slices callers intend to overwrite in place (e.g. a denoiser applying
// thresholds level by level before calling Reconstruct). Clone returns an
// independent copy so the original decomposition is left untouched.
type MutableMultiLevelResult struct {
	MultiLevelResult
}

// Clone deep-copies the coefficients so modifying the result leaves the
// receiver untouched.
func (r MultiLevelResult) Clone() MutableMultiLevelResult {
	details := make([][]float64, len(r.Details))
	for i, d := range r.Details {
		details[i] = append([]float64(nil), d...)
	}
	return MutableMultiLevelResult{MultiLevelResult{
		Details: details,
		Approx:  append([]float64(nil), r.Approx...),
		Levels:  r.Levels,
	}}
}

func validateWaveletAndSignal(w catalog.Wavelet, x []float64) error {
	if err := w.Validate(); err != nil {
		return err
	}
	if len(x) == 0 {
		return fmt.Errorf("modwt: empty signal: %w", vectorwave.ErrInvalidArgument)
	}
	if len(x) < w.FilterLength() {
		return fmt.Errorf("modwt: signal length %d shorter than filter length %d: %w", len(x), w.FilterLength(), vectorwave.ErrInvalidArgument)
	}
	return nil
}
