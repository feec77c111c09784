package catalog

// Biorthogonal spline (CDF) filters. Unlike the Daubechies family these
// carry independent analysis (H0) and synthesis (G0) low-pass filters; the
// corresponding high-pass filters are derived from the OTHER half of the
// pair via biorthoHighPass, and reconstruction needs a GroupDelay shift to
// re-align the output under Periodic boundary handling.

var bior13 = newBiorthogonal(
	"bior1.3",
	[]float64{ // H0: decomposition low-pass
		-0.125,
		0.125,
		1.0,
		1.0,
		0.125,
		-0.125,
	},
	[]float64{ // G0: reconstruction low-pass
		1.0,
		1.0,
	},
	2,
)

var bior22 = newBiorthogonal(
	"bior2.2",
	[]float64{
		-0.1767766952966369,
		0.3535533905932738,
		1.0606601717798214,
		0.3535533905932738,
		-0.1767766952966369,
	},
	[]float64{
		0.3535533905932738,
		0.7071067811865476,
		0.3535533905932738,
	},
	2,
)

var bior24 = newBiorthogonal(
	"bior2.4",
	[]float64{
		0.03782845550726404,
		-0.023849465019556843,
		-0.11062440441843718,
		0.37740285561138236,
		0.8526986790088938,
		0.37740285561138236,
		-0.11062440441843718,
		-0.023849465019556843,
		0.03782845550726404,
	},
	[]float64{
		0.3535533905932738,
		0.7071067811865476,
		0.3535533905932738,
	},
	4,
)

var bior33 = newBiorthogonal(
	"bior3.3",
	[]float64{
		0.06629126073623884,
		-0.19887378220871083,
		-0.15467960838455727,
		0.9943689110435825,
		0.9943689110435825,
		-0.15467960838455727,
		-0.19887378220871083,
		0.06629126073623884,
	},
	[]float64{
		0.1767766952966369,
		0.5303300858899107,
		0.5303300858899107,
		0.1767766952966369,
	},
	3,
)

var bior44 = newBiorthogonal(
	"bior4.4",
	[]float64{
		0.03782845550699535,
		-0.023849465019380396,
		-0.11062440441842342,
		0.37740285561265380,
		0.85269867900940344,
		0.37740285561265380,
		-0.11062440441842342,
		-0.023849465019380396,
		0.03782845550699535,
	},
	[]float64{
		-0.06453888262869706,
		-0.04068941760916406,
		0.41809227322161724,
		0.7884856164055829,
		0.41809227322161724,
		-0.04068941760916406,
		-0.06453888262869706,
	},
	4,
)

// sqrt2 is math.Sqrt2 spelled out to avoid importing math just for this
// one constant.
const sqrt2 = 1.4142135623730951

// normalizeDCGain rescales f uniformly so its taps sum to sqrt(2), the
// convention this package's orthogonal filters already satisfy. Scaling
// preserves the filter's shape (and therefore the biorthogonal spline
// property) while fixing its DC gain.
func normalizeDCGain(f []float64) []float64 {
	var sum float64
	for _, c := range f {
		sum += c
	}
	scale := sqrt2 / sum
	out := make([]float64, len(f))
	for i, c := range f {
		out[i] = c * scale
	}
	return out
}

// newBiorthogonal builds a biorthogonal filter bank from its two
// independent low-pass filters. h0 and g0 are each normalized to sum to
// sqrt(2) so that, after the per-level 1/sqrt(2) MODWT scaling both sides
// receive, a constant (DC) signal round-trips exactly regardless of how
// the source coefficients were originally normalized.
func newBiorthogonal(name string, h0, g0 []float64, groupDelay int) Wavelet {
	h0 = normalizeDCGain(h0)
	g0 = normalizeDCGain(g0)
	return Wavelet{
		Name:       name,
		Kind:       KindBiorthogonal,
		H0:         h0,
		H1:         biorthoHighPass(g0),
		G0:         g0,
		G1:         biorthoHighPass(h0),
		GroupDelay: groupDelay,
	}
}

func init() {
	register(bior13)
	register(bior22)
	register(bior24)
	register(bior33)
	register(bior44)
}
