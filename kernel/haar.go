package kernel

// Haar-specialized kernels (L=2), hand-unrolled to avoid the inner k-loop
// and the modulo on every iteration; only the first/last sample needs
// wraparound handling.

// ConvolveHaarPeriodic computes out[t] = f0*x[t] + f1*x[(t-1) mod n].
func ConvolveHaarPeriodic(out, x []float64, f0, f1 float64) {
	n := len(x)
	out[0] = f0*x[0] + f1*x[n-1]
	for t := 1; t < n; t++ {
		out[t] = f0*x[t] + f1*x[t-1]
	}
}

// ConvolveHaarZeroPad computes out[t] = f0*x[t] + f1*x[t-1], x[-1]=0.
func ConvolveHaarZeroPad(out, x []float64, f0, f1 float64) {
	n := len(x)
	out[0] = f0 * x[0]
	for t := 1; t < n; t++ {
		out[t] = f0*x[t] + f1*x[t-1]
	}
}

// CorrelateHaarPeriodic computes out[t] = f0*x[t] + f1*x[(t+1) mod n].
func CorrelateHaarPeriodic(out, x []float64, f0, f1 float64) {
	n := len(x)
	for t := 0; t < n-1; t++ {
		out[t] = f0*x[t] + f1*x[t+1]
	}
	out[n-1] = f0*x[n-1] + f1*x[0]
}

// CorrelateHaarZeroPad computes out[t] = f0*x[t] + f1*x[t+1], x[n]=0.
func CorrelateHaarZeroPad(out, x []float64, f0, f1 float64) {
	n := len(x)
	for t := 0; t < n-1; t++ {
		out[t] = f0*x[t] + f1*x[t+1]
	}
	out[n-1] = f0 * x[n-1]
}
