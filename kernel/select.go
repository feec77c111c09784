package kernel

import "runtime"

// KernelKind identifies which implementation Select chose.
type KernelKind int

const (
	Scalar KernelKind = iota
	Vector
	Specialized
)

func (k KernelKind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Vector:
		return "vector"
	case Specialized:
		return "specialized"
	default:
		return "unknown"
	}
}

// vectorFloor is the minimum signal length below which the vector kernel's
// extend-and-ConvolveValid setup overhead outweighs the savings; below it
// the scalar kernel is used regardless of SIMD availability.
const vectorFloor = 64

// PerformanceInfo reports what the current build/runtime can vectorize
// with, computed once at package init.
type PerformanceInfo struct {
	SIMDEnabled    bool
	PreferredLanes int
}

// Performance is the process-wide kernel capability snapshot.
var Performance = computePerformanceInfo()

func computePerformanceInfo() PerformanceInfo {
	// github.com/tphakala/simd/f64 dispatches to the best available
	// instruction set internally; from this package's vantage point SIMD
	// is always "enabled" when built with the standard Go toolchain.
	// PreferredLanes reports runtime.NumCPU(); no kernel reads it, and the
	// batch package sizes its goroutine fan-out from GOMAXPROCS instead.
	return PerformanceInfo{
		SIMDEnabled:    true,
		PreferredLanes: runtime.NumCPU(),
	}
}

// Select reports which kernel implementation should be used for a signal
// of length n with a filter of length l. simdEnabled lets callers (tests,
// or a future runtime feature flag) force the scalar path.
func Select(n, l int, simdEnabled bool) KernelKind {
	if !simdEnabled || n < vectorFloor {
		return Scalar
	}
	if l == 2 || l == 8 {
		return Specialized
	}
	return Vector
}

// Convolve dispatches out[t] = sum_k f[k]*x[(t-k) mod n] (or the
// zero-padding variant) to the scalar, vector, or specialized kernel per
// Select's policy. len(out) must equal len(x); f must be non-empty and no
// longer than x.
func Convolve(out, x, f []float64, zeroPad bool) {
	n, l := len(x), len(f)
	switch Select(n, l, Performance.SIMDEnabled) {
	case Specialized:
		if l == 2 {
			if zeroPad {
				ConvolveHaarZeroPad(out, x, f[0], f[1])
			} else {
				ConvolveHaarPeriodic(out, x, f[0], f[1])
			}
			return
		}
		var f8 [8]float64
		copy(f8[:], f)
		if zeroPad {
			ConvolveDB4ZeroPad(out, x, f8)
		} else {
			ConvolveDB4Periodic(out, x, f8)
		}
	case Vector:
		if zeroPad {
			ConvolveZeroPadVector(out, x, f)
		} else {
			ConvolvePeriodicVector(out, x, f)
		}
	default:
		if zeroPad {
			ConvolveZeroPadScalar(out, x, f)
		} else {
			ConvolvePeriodicScalar(out, x, f)
		}
	}
}

// Correlate dispatches out[t] = sum_k f[k]*x[(t+k) mod n] (or the
// zero-padding variant) to the scalar, vector, or specialized kernel per
// Select's policy, mirroring Convolve.
func Correlate(out, x, f []float64, zeroPad bool) {
	n, l := len(x), len(f)
	switch Select(n, l, Performance.SIMDEnabled) {
	case Specialized:
		if l == 2 {
			if zeroPad {
				CorrelateHaarZeroPad(out, x, f[0], f[1])
			} else {
				CorrelateHaarPeriodic(out, x, f[0], f[1])
			}
			return
		}
		var f8 [8]float64
		copy(f8[:], f)
		if zeroPad {
			CorrelateDB4ZeroPad(out, x, f8)
		} else {
			CorrelateDB4Periodic(out, x, f8)
		}
	case Vector:
		if zeroPad {
			CorrelateZeroPadVector(out, x, f)
		} else {
			CorrelatePeriodicVector(out, x, f)
		}
	default:
		if zeroPad {
			CorrelateZeroPadScalar(out, x, f)
		} else {
			CorrelatePeriodicScalar(out, x, f)
		}
	}
}
