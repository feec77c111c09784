// Package simdops provides the SIMD-accelerated float64 operations the
// kernel package dispatches through, rather than importing
// github.com/tphakala/simd/f64 at every call site.
package simdops

import "github.com/tphakala/simd/f64"

// Ops holds the SIMD operations VectorWave actually uses. Function
// pointers keep the call sites free of a direct github.com/tphakala/simd/f64
// import.
type Ops struct {
	// ConvolveValid computes valid convolution of signal with kernel.
	ConvolveValid func(dst, signal, kernel []float64)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	ConvolveValid: f64.ConvolveValid,
	Scale:         f64.Scale,
}

// Float64Ops returns the shared float64 SIMD operations table.
func Float64Ops() *Ops {
	return &ops64
}
