// Package batch implements a structure-of-arrays MODWT processor for many
// equal-length signals, falling back to the sequential per-signal path for
// batches too small or too short to benefit from SoA packing.
package batch

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Prophetizo/VectorWave/catalog"
	"github.com/Prophetizo/VectorWave/kernel"
	"github.com/Prophetizo/VectorWave/modwt"
	vectorwave "github.com/Prophetizo/VectorWave"
)

// minBatchSize and minSignalLen are the (batch size, signal length) floors below which packing
// into structure-of-arrays and back costs more than it saves; below them
// ForwardBatch/InverseBatch delegate to modwt.ForwardBatch/InverseBatch.
const (
	minBatchSize = 4
	minSignalLen = 64
)

func useSoA(b, n int) bool {
	return b >= minBatchSize && n >= minSignalLen
}

// ForwardBatch decomposes b equal-length signals in one pass. All signals
// must share the same length; mismatched lengths return
// ErrInvalidArgument.
func ForwardBatch(w catalog.Wavelet, mode modwt.BoundaryMode, signals [][]float64) ([]modwt.Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(signals) == 0 {
		return nil, fmt.Errorf("batch: empty batch: %w", vectorwave.ErrInvalidArgument)
	}
	n := len(signals[0])
	for i, s := range signals {
		if len(s) != n {
			return nil, fmt.Errorf("batch: signal %d has length %d, want %d: %w", i, len(s), n, vectorwave.ErrInvalidArgument)
		}
	}

	b := len(signals)
	if !useSoA(b, n) {
		return modwt.ForwardBatch(w, mode, signals)
	}

	h0 := kernel.ScaleLevel1(w.H0)
	h1 := kernel.ScaleLevel1(w.H1)
	soaX := kernel.ToSoA(signals)

	approxSoA := make([]float64, n*b)
	detailSoA := make([]float64, n*b)
	zeroPad := mode == modwt.ZeroPadding
	if zeroPad {
		kernel.BatchConvolveZeroPad(approxSoA, soaX, h0, b, n)
		kernel.BatchConvolveZeroPad(detailSoA, soaX, h1, b, n)
	} else {
		kernel.BatchConvolvePeriodic(approxSoA, soaX, h0, b, n)
		kernel.BatchConvolvePeriodic(detailSoA, soaX, h1, b, n)
	}

	approxes := kernel.FromSoA(approxSoA, b, n)
	details := kernel.FromSoA(detailSoA, b, n)

	out := make([]modwt.Result, b)
	for i := range out {
		out[i] = modwt.Result{Approx: approxes[i], Detail: details[i], N: n}
	}
	return out, nil
}

// InverseBatch reconstructs b equal-length MODWT results in one pass.
func InverseBatch(w catalog.Wavelet, mode modwt.BoundaryMode, results []modwt.Result) ([][]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("batch: empty batch: %w", vectorwave.ErrInvalidArgument)
	}
	n := results[0].N
	for i, r := range results {
		if r.N != n || len(r.Approx) != n || len(r.Detail) != n {
			return nil, fmt.Errorf("batch: result %d has length %d, want %d: %w", i, r.N, n, vectorwave.ErrInvalidArgument)
		}
	}

	b := len(results)
	if !useSoA(b, n) {
		return modwt.InverseBatch(w, mode, results)
	}

	g0 := kernel.ScaleLevel1(w.G0)
	g1 := kernel.ScaleLevel1(w.G1)

	approxes := make([][]float64, b)
	details := make([][]float64, b)
	for i, r := range results {
		approxes[i] = r.Approx
		details[i] = r.Detail
	}
	soaApprox := kernel.ToSoA(approxes)
	soaDetail := kernel.ToSoA(details)

	partA := make([]float64, n*b)
	partD := make([]float64, n*b)
	zeroPad := mode == modwt.ZeroPadding
	if zeroPad {
		kernel.BatchCorrelateZeroPad(partA, soaApprox, g0, b, n)
		kernel.BatchCorrelateZeroPad(partD, soaDetail, g1, b, n)
	} else {
		kernel.BatchCorrelatePeriodic(partA, soaApprox, g0, b, n)
		kernel.BatchCorrelatePeriodic(partD, soaDetail, g1, b, n)
	}

	soaOut := make([]float64, n*b)
	for i := range soaOut {
		soaOut[i] = partA[i] + partD[i]
	}
	out := kernel.FromSoA(soaOut, b, n)

	if mode == modwt.Periodic && w.GroupDelay != 0 {
		for _, x := range out {
			shiftLeft(x, w.GroupDelay)
		}
	}
	return out, nil
}

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

// ForwardBatchParallel is ForwardBatch sliced across runtime.GOMAXPROCS(0)
// goroutines, each handling a contiguous sub-batch. Results are identical
// to ForwardBatch to within floating point reordering (well under the
// 1e-12 relative tolerance the batch kernels are required to hold).
func ForwardBatchParallel(w catalog.Wavelet, mode modwt.BoundaryMode, signals [][]float64) ([]modwt.Result, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if len(signals) == 0 {
		return nil, fmt.Errorf("batch: empty batch: %w", vectorwave.ErrInvalidArgument)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(signals) {
		workers = len(signals)
	}
	if workers <= 1 {
		return ForwardBatch(w, mode, signals)
	}

	out := make([]modwt.Result, len(signals))
	errs := make([]error, workers)
	chunk := (len(signals) + workers - 1) / workers

	var wg sync.WaitGroup
	for wkr := 0; wkr < workers; wkr++ {
		start := wkr * chunk
		end := start + chunk
		if start >= len(signals) {
			break
		}
		if end > len(signals) {
			end = len(signals)
		}
		wg.Add(1)
		go func(wkr, start, end int) {
			defer wg.Done()
			sub, err := ForwardBatch(w, mode, signals[start:end])
			if err != nil {
				errs[wkr] = err
				return
			}
			copy(out[start:end], sub)
		}(wkr, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
