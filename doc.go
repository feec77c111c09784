// Package vectorwave provides a Maximal Overlap Discrete Wavelet Transform
// (MODWT) engine in pure Go.
//
// Unlike the classical (decimated) DWT, MODWT is shift-invariant: at every
// decomposition level the approximation and detail coefficient sequences
// have the same length as the input signal. That property makes MODWT
// well suited to streaming and batch analysis pipelines where alignment
// with the original time axis matters.
//
// # Features
//
//   - Single-level and multi-level MODWT, periodic and zero-padding boundary handling
//   - Orthogonal (Haar, Daubechies) and biorthogonal (CDF spline) wavelet catalog
//   - Scalar, SIMD-accelerated, and hand-specialized (Haar/DB4) convolution kernels
//   - Structure-of-arrays batch processor for many equal-length signals
//   - A cooperative, backpressure-aware streaming processor
//   - MAD-based wavelet denoising (Universal/SURE/Minimax thresholds)
//   - An optional buffer pool for allocation-sensitive callers
//
// # Quick Start
//
// For a single-level transform:
//
//	w, err := catalog.Get("db4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := modwt.Forward(w, modwt.Periodic, signal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	recovered, err := modwt.Inverse(w, modwt.Periodic, result)
//
// For a multi-level decomposition:
//
//	ml, err := modwt.Decompose(w, modwt.Periodic, signal, 4)
//
// For streaming:
//
//	p := streaming.NewProcessor(w, modwt.Periodic, 480, streaming.Block)
//	p.Subscribe(sink, 16)
//	err := p.Push(chunk)
package vectorwave
