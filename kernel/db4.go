package kernel

// Daubechies-4-specialized kernels (L=8). Taps are unrolled and the
// boundary-wrap handling is confined to the first/last L-1 samples so the
// interior loop runs with no modulo and no branch.

// ConvolveDB4Periodic computes out[t] = sum_{k=0}^{7} f[k]*x[(t-k) mod n].
func ConvolveDB4Periodic(out, x []float64, f [8]float64) {
	n := len(x)
	edge := 7
	if edge > n {
		edge = n
	}
	for t := 0; t < edge; t++ {
		var sum float64
		for k := 0; k < 8; k++ {
			idx := t - k
			if idx < 0 {
				idx += n
			}
			sum += f[k] * x[idx]
		}
		out[t] = sum
	}
	for t := edge; t < n; t++ {
		out[t] = f[0]*x[t] + f[1]*x[t-1] + f[2]*x[t-2] + f[3]*x[t-3] +
			f[4]*x[t-4] + f[5]*x[t-5] + f[6]*x[t-6] + f[7]*x[t-7]
	}
}

// ConvolveDB4ZeroPad computes out[t] = sum_{k=0}^{7} f[k]*x[t-k], x[i]=0 for i<0.
func ConvolveDB4ZeroPad(out, x []float64, f [8]float64) {
	n := len(x)
	edge := 7
	if edge > n {
		edge = n
	}
	for t := 0; t < edge; t++ {
		var sum float64
		kmax := t + 1
		for k := 0; k < kmax; k++ {
			sum += f[k] * x[t-k]
		}
		out[t] = sum
	}
	for t := edge; t < n; t++ {
		out[t] = f[0]*x[t] + f[1]*x[t-1] + f[2]*x[t-2] + f[3]*x[t-3] +
			f[4]*x[t-4] + f[5]*x[t-5] + f[6]*x[t-6] + f[7]*x[t-7]
	}
}

// CorrelateDB4Periodic computes out[t] = sum_{k=0}^{7} f[k]*x[(t+k) mod n].
func CorrelateDB4Periodic(out, x []float64, f [8]float64) {
	n := len(x)
	edge := n - 7
	if edge < 0 {
		edge = 0
	}
	for t := 0; t < edge; t++ {
		out[t] = f[0]*x[t] + f[1]*x[t+1] + f[2]*x[t+2] + f[3]*x[t+3] +
			f[4]*x[t+4] + f[5]*x[t+5] + f[6]*x[t+6] + f[7]*x[t+7]
	}
	for t := edge; t < n; t++ {
		var sum float64
		for k := 0; k < 8; k++ {
			idx := t + k
			if idx >= n {
				idx -= n
			}
			sum += f[k] * x[idx]
		}
		out[t] = sum
	}
}

// CorrelateDB4ZeroPad computes out[t] = sum_{k=0}^{7} f[k]*x[t+k], x[i]=0 for i>=n.
func CorrelateDB4ZeroPad(out, x []float64, f [8]float64) {
	n := len(x)
	edge := n - 7
	if edge < 0 {
		edge = 0
	}
	for t := 0; t < edge; t++ {
		out[t] = f[0]*x[t] + f[1]*x[t+1] + f[2]*x[t+2] + f[3]*x[t+3] +
			f[4]*x[t+4] + f[5]*x[t+5] + f[6]*x[t+6] + f[7]*x[t+7]
	}
	for t := edge; t < n; t++ {
		var sum float64
		kmax := n - t
		for k := 0; k < kmax; k++ {
			sum += f[k] * x[t+k]
		}
		out[t] = sum
	}
}
