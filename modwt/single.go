package modwt

import (
	"fmt"

	"github.com/Prophetizo/VectorWave/catalog"
	"github.com/Prophetizo/VectorWave/kernel"
	"github.com/Prophetizo/VectorWave/pool"
	vectorwave "github.com/Prophetizo/VectorWave"
)

// Forward computes a single-level MODWT decomposition of x under the given
// wavelet and boundary mode. The result's Approx and Detail are each the
// same length as x.
func Forward(w catalog.Wavelet, mode BoundaryMode, x []float64) (Result, error) {
	return ForwardPool(w, mode, x, nil)
}

// ForwardPool is Forward, acquiring its output buffers from p instead of
// allocating. A nil p behaves exactly like Forward.
func ForwardPool(w catalog.Wavelet, mode BoundaryMode, x []float64, p *pool.Pool) (Result, error) {
	if err := validateWaveletAndSignal(w, x); err != nil {
		return Result{}, err
	}
	n := len(x)
	h0 := kernel.ScaleLevel1(w.H0)
	h1 := kernel.ScaleLevel1(w.H1)

	approx := p.Acquire(n)
	detail := p.Acquire(n)
	kernel.Convolve(approx, x, h0, mode.zeroPad())
	kernel.Convolve(detail, x, h1, mode.zeroPad())

	return Result{Approx: approx, Detail: detail, N: n}, nil
}

// Inverse reconstructs the signal a single-level MODWT decomposition was
// computed from. For Periodic mode reconstruction is exact to machine
// precision for both orthogonal and biorthogonal wavelets (the latter via
// a GroupDelay cyclic shift). For ZeroPadding mode, biorthogonal wavelets
// with nonzero GroupDelay are not phase-compensated; see the ZeroPadding
// doc.
func Inverse(w catalog.Wavelet, mode BoundaryMode, r Result) ([]float64, error) {
	return InversePool(w, mode, r, nil)
}

// InversePool is Inverse, acquiring its output buffer from p instead of
// allocating. A nil p behaves exactly like Inverse.
func InversePool(w catalog.Wavelet, mode BoundaryMode, r Result, p *pool.Pool) ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(r.Approx) != r.N || len(r.Detail) != r.N {
		return nil, fmt.Errorf("modwt: result length mismatch: %w", vectorwave.ErrInvalidArgument)
	}
	if r.N < w.FilterLength() {
		return nil, fmt.Errorf("modwt: result length %d shorter than filter length %d: %w", r.N, w.FilterLength(), vectorwave.ErrInvalidArgument)
	}

	g0 := kernel.ScaleLevel1(w.G0)
	g1 := kernel.ScaleLevel1(w.G1)

	x := p.Acquire(r.N)
	tmp := p.Acquire(r.N)
	zeroPad := mode.zeroPad()
	kernel.Correlate(x, r.Approx, g0, zeroPad)
	kernel.Correlate(tmp, r.Detail, g1, zeroPad)
	for i := range x {
		x[i] += tmp[i]
	}
	p.Release(tmp)

	if mode == Periodic && w.GroupDelay != 0 {
		shiftLeft(x, w.GroupDelay)
	}
	return x, nil
}

// shiftLeft cyclically shifts x left by d positions in place: the sample
// that was at index d moves to index 0.
func shiftLeft(x []float64, d int) {
	n := len(x)
	d = ((d % n) + n) % n
	if d == 0 {
		return
	}
	shifted := make([]float64, n)
	for i := 0; i < n; i++ {
		shifted[i] = x[(i+d)%n]
	}
	copy(x, shifted)
}

// ForwardBatch decomposes len(signals) signals of possibly differing
// lengths, applying Forward to each independently. This is a convenience
// wrapper over per-signal calls, distinct from the batch package's
// structure-of-arrays fast path, which requires equal-length signals.
func ForwardBatch(w catalog.Wavelet, mode BoundaryMode, signals [][]float64) ([]Result, error) {
	out := make([]Result, len(signals))
	for i, x := range signals {
		r, err := Forward(w, mode, x)
		if err != nil {
			return nil, fmt.Errorf("modwt: signal %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// InverseBatch is the mixed-length counterpart to ForwardBatch.
func InverseBatch(w catalog.Wavelet, mode BoundaryMode, results []Result) ([][]float64, error) {
	out := make([][]float64, len(results))
	for i, r := range results {
		x, err := Inverse(w, mode, r)
		if err != nil {
			return nil, fmt.Errorf("modwt: result %d: %w", i, err)
		}
		out[i] = x
	}
	return out, nil
}
