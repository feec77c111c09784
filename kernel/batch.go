package kernel

// Structure-of-arrays batch kernel: B equal-length signals are packed so
// element (b,t) — batch index b, time index t — lives at t*B+b. Processing
// time t for every signal in the batch together keeps the per-tap filter
// coefficient broadcast across a cache-hot B-wide lane, grounded on
// BatchSIMDMODWT's generalBatchMODWTSoA.

// ToSoA packs B equal-length signals into structure-of-arrays layout.
// All signals must share the same length n; the returned slice has length
// n*B.
func ToSoA(signals [][]float64) []float64 {
	b := len(signals)
	if b == 0 {
		return nil
	}
	n := len(signals[0])
	soa := make([]float64, n*b)
	for t := 0; t < n; t++ {
		off := t * b
		for s := 0; s < b; s++ {
			soa[off+s] = signals[s][t]
		}
	}
	return soa
}

// FromSoA unpacks a structure-of-arrays buffer of n*b elements back into b
// signals of length n.
func FromSoA(soa []float64, b, n int) [][]float64 {
	out := make([][]float64, b)
	for s := 0; s < b; s++ {
		out[s] = make([]float64, n)
	}
	for t := 0; t < n; t++ {
		off := t * b
		for s := 0; s < b; s++ {
			out[s][t] = soa[off+s]
		}
	}
	return out
}

// BatchConvolvePeriodic computes, for every batched signal simultaneously,
// dst[t,b] = sum_k f[k]*soaX[(t-k) mod n, b]. dst must be pre-sized n*b and
// is zeroed before accumulation.
func BatchConvolvePeriodic(dst, soaX, f []float64, b, n int) {
	batchConvolve(dst, soaX, f, b, n, true)
}

// BatchConvolveZeroPad is the zero-padding analog of BatchConvolvePeriodic.
func BatchConvolveZeroPad(dst, soaX, f []float64, b, n int) {
	batchConvolve(dst, soaX, f, b, n, false)
}

func batchConvolve(dst, soaX, f []float64, b, n int, periodic bool) {
	for i := range dst {
		dst[i] = 0
	}
	l := len(f)
	tmp := make([]float64, b)
	for t := 0; t < n; t++ {
		dstOff := t * b
		for k := 0; k < l; k++ {
			idx := t - k
			if idx < 0 {
				if !periodic {
					continue
				}
				idx += n
			}
			ops.Scale(tmp, soaX[idx*b:idx*b+b], f[k])
			for s := 0; s < b; s++ {
				dst[dstOff+s] += tmp[s]
			}
		}
	}
}

// BatchCorrelatePeriodic computes, for every batched signal simultaneously,
// dst[t,b] = sum_k f[k]*soaA[(t+k) mod n, b]. Used for reconstruction.
func BatchCorrelatePeriodic(dst, soaA, f []float64, b, n int) {
	batchCorrelate(dst, soaA, f, b, n, true)
}

// BatchCorrelateZeroPad is the zero-padding analog of BatchCorrelatePeriodic.
func BatchCorrelateZeroPad(dst, soaA, f []float64, b, n int) {
	batchCorrelate(dst, soaA, f, b, n, false)
}

func batchCorrelate(dst, soaA, f []float64, b, n int, periodic bool) {
	for i := range dst {
		dst[i] = 0
	}
	l := len(f)
	tmp := make([]float64, b)
	for t := 0; t < n; t++ {
		dstOff := t * b
		for k := 0; k < l; k++ {
			idx := t + k
			if idx >= n {
				if !periodic {
					continue
				}
				idx -= n
			}
			ops.Scale(tmp, soaA[idx*b:idx*b+b], f[k])
			for s := 0; s < b; s++ {
				dst[dstOff+s] += tmp[s]
			}
		}
	}
}
