// Package catalog holds the built-in wavelet filter definitions used by the
// MODWT transforms: orthogonal filters (Haar, Daubechies) and biorthogonal
// spline filters (CDF/Bior). A Wavelet carries both analysis (H0/H1) and
// synthesis (G0/G1) filter taps so callers never need to derive one from the
// other at transform time.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	vectorwave "github.com/Prophetizo/VectorWave"
)

// WaveletKind distinguishes filter families that need different handling
// during transform and reconstruction.
type WaveletKind int

const (
	// KindOrthogonal wavelets satisfy G0=H0, G1=H1 (self-dual); PR holds
	// exactly under the standard MODWT convolution/correlation pair.
	KindOrthogonal WaveletKind = iota

	// KindBiorthogonal wavelets use independent analysis and synthesis
	// filter pairs and may carry a nonzero GroupDelay.
	KindBiorthogonal

	// KindContinuous marks wavelet families with no discrete filter bank
	// (e.g. Morlet, Mexican Hat). Get never returns one; the catalog
	// currently registers none. Passing a KindContinuous wavelet to a
	// transform is ErrInvalidArgument.
	KindContinuous
)

// String implements fmt.Stringer.
func (k WaveletKind) String() string {
	switch k {
	case KindOrthogonal:
		return "orthogonal"
	case KindBiorthogonal:
		return "biorthogonal"
	case KindContinuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Wavelet is an immutable filter bank: analysis low/high-pass (H0/H1) and
// synthesis low/high-pass (G0/G1) taps, plus the group delay to apply when
// reconstructing a biorthogonal transform under Periodic boundary handling.
//
// Values returned by Get are shared; callers must not mutate the filter
// slices.
type Wavelet struct {
	Name       string
	Kind       WaveletKind
	H0, H1     []float64
	G0, G1     []float64
	GroupDelay int
}

// Validate reports whether w is usable by a transform: non-empty filters,
// a non-Continuous Kind, and, for orthogonal wavelets, matching
// analysis/synthesis pair lengths (biorthogonal wavelets are exempt; their
// H0/H1 and G0/G1 pairs are independently sized by design).
func (w Wavelet) Validate() error {
	if w.Kind == KindContinuous {
		return fmt.Errorf("catalog: wavelet %q has no discrete filter bank: %w", w.Name, vectorwave.ErrInvalidArgument)
	}
	if len(w.H0) == 0 || len(w.H1) == 0 || len(w.G0) == 0 || len(w.G1) == 0 {
		return fmt.Errorf("catalog: wavelet %q has an empty filter: %w", w.Name, vectorwave.ErrInvalidArgument)
	}
	// Orthogonal wavelets are self-dual (G0=H0, G1=H1) so the QMF pairs must
	// match length. Biorthogonal wavelets pair an analysis filter of one
	// length with a synthesis filter of another by design (e.g. bior1.3's
	// H0 has length 6 against H1's length 2) and are not held to this rule.
	if w.Kind == KindOrthogonal {
		if len(w.H0) != len(w.H1) {
			return fmt.Errorf("catalog: wavelet %q: H0/H1 length mismatch (%d vs %d): %w", w.Name, len(w.H0), len(w.H1), vectorwave.ErrInvalidArgument)
		}
		if len(w.G0) != len(w.G1) {
			return fmt.Errorf("catalog: wavelet %q: G0/G1 length mismatch (%d vs %d): %w", w.Name, len(w.G0), len(w.G1), vectorwave.ErrInvalidArgument)
		}
	}
	return nil
}

// FilterLength returns the longest of the four filter taps, the value the
// MODWT transforms use as "L" when checking N >= L and computing max levels.
func (w Wavelet) FilterLength() int {
	l := len(w.H0)
	for _, f := range [][]float64{w.H1, w.G0, w.G1} {
		if len(f) > l {
			l = len(f)
		}
	}
	return l
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Wavelet)
)

func register(w Wavelet) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[w.Name] = w
}

// Get looks up a wavelet by name (case-sensitive, matching the names used by
// the registered constants: "haar", "db2", "db4", "db6", "db8", "db10",
// "bior1.3", "bior2.2", "bior2.4", "bior3.3", "bior4.4").
func Get(name string) (Wavelet, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	w, ok := registry[name]
	if !ok {
		return Wavelet{}, fmt.Errorf("catalog: %q: %w", name, vectorwave.ErrUnknownWavelet)
	}
	return w, nil
}

// Orthogonal returns the registered orthogonal wavelets, sorted by Name.
func Orthogonal() []Wavelet {
	return byKind(KindOrthogonal)
}

// Biorthogonal returns the registered biorthogonal wavelets, sorted by Name.
func Biorthogonal() []Wavelet {
	return byKind(KindBiorthogonal)
}

func byKind(kind WaveletKind) []Wavelet {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Wavelet, 0, len(registry))
	for _, w := range registry {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every registered wavelet name, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// qmfHighPass derives an orthogonal high-pass filter from its low-pass
// counterpart via the quadrature mirror relation h1[i] = (-1)^i * h0[L-1-i].
// Used for Haar and the Daubechies family, where G0=H0 and G1=H1.
func qmfHighPass(h0 []float64) []float64 {
	l := len(h0)
	h1 := make([]float64, l)
	for i := 0; i < l; i++ {
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		h1[i] = sign * h0[l-1-i]
	}
	return h1
}

// biorthoHighPass derives a high-pass filter from the OTHER filter in a
// biorthogonal pair: g[i] = (-1)^(L-1-i) * h[L-1-i]. Applying this to G0
// yields H1, and to H0 yields G1.
func biorthoHighPass(h []float64) []float64 {
	l := len(h)
	g := make([]float64, l)
	for i := 0; i < l; i++ {
		j := l - 1 - i
		sign := 1.0
		if j%2 != 0 {
			sign = -1.0
		}
		g[i] = sign * h[j]
	}
	return g
}
