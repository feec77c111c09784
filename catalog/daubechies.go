package catalog

// Orthogonal filters: Haar and the Daubechies extremal-phase family
// (db2/db4/db6/db8/db10). Each is self-dual (G0=H0, G1=H1), so only the
// low-pass decomposition taps are transcribed; the high-pass taps are
// derived via qmfHighPass.

var haar = newOrthogonal("haar", []float64{
	0.7071067811865476,
	0.7071067811865476,
})

var db2 = newOrthogonal("db2", []float64{
	-0.12940952255092145,
	0.22414386804185735,
	0.836516303737469,
	0.48296291314469025,
})

var db4 = newOrthogonal("db4", []float64{
	-0.010597401784997278,
	0.032883011666982945,
	0.030841381835986965,
	-0.18703481171888114,
	-0.02798376941698385,
	0.6308807679295904,
	0.7148465705525415,
	0.23037781330885523,
})

var db6 = newOrthogonal("db6", []float64{
	-0.0010773010853084716,
	0.004777257510945511,
	0.0005538422008955625,
	-0.03158203931748603,
	0.02752286553030572,
	0.09750160558732304,
	-0.12976686756710563,
	-0.22626469396516913,
	0.3152503517092432,
	0.7511339080215775,
	0.4946238903983854,
	0.11154074335008017,
})

var db8 = newOrthogonal("db8", []float64{
	-0.00011747678400228192,
	0.0006754494059985568,
	-0.0003917403729959771,
	-0.00487035299301066,
	0.008746094047015655,
	0.013981027917015516,
	-0.04408825393106472,
	-0.01736930100202211,
	0.128747426620186,
	0.00047248457399797254,
	-0.2840155429624281,
	-0.015829105256023893,
	0.5853546836548691,
	0.6756307362980128,
	0.3128715909144659,
	0.05441584224308161,
})

var db10 = newOrthogonal("db10", []float64{
	-0.00001326420300235487,
	0.00009358867032006959,
	-0.0001164668549943862,
	-0.0006858566950046825,
	0.0019924052951925241,
	0.0013953517470688436,
	-0.010733175482979604,
	0.0036065535669883944,
	0.03321267405893324,
	-0.02945753682194567,
	-0.07139414716586077,
	0.09305736460380659,
	0.12736934033574265,
	-0.19594627437659665,
	-0.24984642432731538,
	0.2811723436604265,
	0.6884590394525921,
	0.5272011889309198,
	0.18817680007762133,
	0.026670057900950818,
})

func newOrthogonal(name string, h0 []float64) Wavelet {
	h1 := qmfHighPass(h0)
	return Wavelet{
		Name:       name,
		Kind:       KindOrthogonal,
		H0:         h0,
		H1:         h1,
		G0:         h0,
		G1:         h1,
		GroupDelay: 0,
	}
}

func init() {
	register(haar)
	register(db2)
	register(db4)
	register(db6)
	register(db8)
	register(db10)
}
