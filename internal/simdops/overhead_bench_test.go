package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

// BenchmarkDirectF64ConvolveValid measures direct convolution.
func BenchmarkDirectF64ConvolveValid(b *testing.B) {
	signal := make([]float64, 128)
	kernel := make([]float64, 20)
	dst := make([]float64, 109) // 128 - 20 + 1
	for i := range signal {
		signal[i] = float64(i) * 0.01
	}
	for i := range kernel {
		kernel[i] = float64(i) * 0.05
	}

	b.ReportAllocs()
	for b.Loop() {
		f64.ConvolveValid(dst, signal, kernel)
	}
}

// BenchmarkIndirectF64ConvolveValid measures indirect convolution through
// the Ops dispatch table used by kernel.
func BenchmarkIndirectF64ConvolveValid(b *testing.B) {
	ops := Float64Ops()
	signal := make([]float64, 128)
	kernel := make([]float64, 20)
	dst := make([]float64, 109) // 128 - 20 + 1
	for i := range signal {
		signal[i] = float64(i) * 0.01
	}
	for i := range kernel {
		kernel[i] = float64(i) * 0.05
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.ConvolveValid(dst, signal, kernel)
	}
}

// BenchmarkDirectF64Scale measures direct scaling.
func BenchmarkDirectF64Scale(b *testing.B) {
	a := make([]float64, 128)
	dst := make([]float64, 128)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		f64.Scale(dst, a, 0.5)
	}
}

// BenchmarkIndirectF64Scale measures indirect scaling through the Ops
// dispatch table used by kernel.
func BenchmarkIndirectF64Scale(b *testing.B) {
	ops := Float64Ops()
	a := make([]float64, 128)
	dst := make([]float64, 128)
	for i := range a {
		a[i] = float64(i) * 0.01
	}

	b.ReportAllocs()
	for b.Loop() {
		ops.Scale(dst, a, 0.5)
	}
}
