package kernel

import "github.com/Prophetizo/VectorWave/internal/simdops"

// ops is the float64 SIMD operation table, routed through simdops instead
// of calling github.com/tphakala/simd/f64 directly at every call site.
var ops = simdops.Float64Ops()

// Vector convolution kernels built on github.com/tphakala/simd/f64's
// "valid" convolution: ConvolveValid(dst, signal, kernel) computes
// dst[t] = sum_k kernel[k]*signal[t+k] for len(dst) = len(signal)-len(kernel)+1.
//
// MODWT's circular analysis sum out[t] = sum_k f[k]*x[(t-k) mod n] is
// expressed as a valid convolution by prepending the last L-1 samples of x
// (periodic) or L-1 zeros (zero-padding) and time-reversing f. The
// synthesis sum out[t] = sum_k f[k]*x[(t+k) mod n] needs no reversal:
// appending the first L-1 samples of x (periodic) or L-1 zeros
// (zero-padding) and calling ConvolveValid with f unreversed reproduces it
// directly.

func reversed(f []float64) []float64 {
	l := len(f)
	r := make([]float64, l)
	for i, v := range f {
		r[l-1-i] = v
	}
	return r
}

// ConvolvePeriodicVector computes the same result as ConvolvePeriodicScalar.
func ConvolvePeriodicVector(out, x, f []float64) {
	n, l := len(x), len(f)
	extended := make([]float64, n+l-1)
	copy(extended, x[n-(l-1):])
	copy(extended[l-1:], x)
	ops.ConvolveValid(out, extended, reversed(f))
}

// ConvolveZeroPadVector computes the same result as ConvolveZeroPadScalar.
func ConvolveZeroPadVector(out, x, f []float64) {
	n, l := len(x), len(f)
	extended := make([]float64, n+l-1) // leading l-1 zeros
	copy(extended[l-1:], x)
	ops.ConvolveValid(out, extended, reversed(f))
}

// CorrelatePeriodicVector computes the same result as CorrelatePeriodicScalar.
func CorrelatePeriodicVector(out, x, f []float64) {
	n, l := len(x), len(f)
	extended := make([]float64, n+l-1)
	copy(extended, x)
	copy(extended[n:], x[:l-1])
	ops.ConvolveValid(out, extended, f)
}

// CorrelateZeroPadVector computes the same result as CorrelateZeroPadScalar.
func CorrelateZeroPadVector(out, x, f []float64) {
	n, l := len(x), len(f)
	extended := make([]float64, n+l-1) // trailing l-1 zeros
	copy(extended, x)
	ops.ConvolveValid(out, extended, f)
}
