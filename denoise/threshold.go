// Package denoise implements MAD-based wavelet denoising: batch
// multi-level threshold-and-shrink, and a streaming variant that tracks
// noise level across blocks.
package denoise

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ThresholdMethod selects how the per-level threshold value is computed.
type ThresholdMethod int

const (
	// Universal uses sigma*sqrt(2*ln(n)), the classical VisuShrink
	// threshold.
	Universal ThresholdMethod = iota

	// SURE picks the threshold minimizing Stein's Unbiased Risk
	// Estimate over the level's detail coefficients, capped at the
	// Universal threshold.
	SURE

	// Minimax uses a threshold calibrated to minimize the maximum risk
	// over a class of signals, cheaper to compute than SURE and less
	// aggressive than Universal for short levels.
	Minimax
)

// ThresholdKind selects the shrinkage function applied once the threshold
// value is known.
type ThresholdKind int

const (
	// Soft shrinkage: sign(x)*max(|x|-t, 0).
	Soft ThresholdKind = iota

	// Hard shrinkage: x if |x| > t, else 0.
	Hard
)

// EstimateSigma estimates the noise standard deviation from a set of
// detail coefficients via the median absolute deviation estimator:
// sigma = MAD(|d|) / 0.6745, the standard correction factor that makes the
// estimator consistent for Gaussian noise.
func EstimateSigma(detail []float64) float64 {
	if len(detail) == 0 {
		return 0
	}
	abs := make([]float64, len(detail))
	for i, v := range detail {
		abs[i] = math.Abs(v)
	}
	return median(abs) / 0.6745
}

// median computes the median of a copy of values using gonum's order
// statistics rather than a hand-rolled quickselect.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	weights := make([]float64, len(sorted))
	for i := range weights {
		weights[i] = 1
	}
	return stat.Quantile(0.5, stat.Empirical, sorted, weights)
}

// Threshold computes the threshold value for a level's detail
// coefficients, noise sigma, and method.
func Threshold(detail []float64, sigma float64, method ThresholdMethod) float64 {
	n := len(detail)
	if n == 0 || sigma == 0 {
		return 0
	}
	switch method {
	case SURE:
		return sureThreshold(detail, sigma)
	case Minimax:
		return minimaxThreshold(n, sigma)
	default:
		return universalThreshold(n, sigma)
	}
}

func universalThreshold(n int, sigma float64) float64 {
	return sigma * math.Sqrt(2*math.Log(float64(n)))
}

func minimaxThreshold(n int, sigma float64) float64 {
	if n <= 32 {
		return 0
	}
	logN := math.Log2(float64(n))
	if n <= 64 {
		return sigma * (0.3936 + 0.1829*logN)
	}
	return sigma * (0.4745 + 0.1148*logN)
}

// sureThreshold exhaustively scans the sorted |coefficient| magnitudes as
// candidate thresholds and keeps the one minimizing Stein's Unbiased Risk
// Estimate, capped at the Universal threshold (SURE can otherwise pick an
// unstable, overly small threshold on heavy-tailed detail coefficients).
func sureThreshold(detail []float64, sigma float64) float64 {
	n := len(detail)
	normalized := make([]float64, n)
	for i, v := range detail {
		normalized[i] = v / sigma
	}
	abs := make([]float64, n)
	for i, v := range normalized {
		abs[i] = math.Abs(v)
	}
	sorted := append([]float64(nil), abs...)
	sort.Float64s(sorted)

	bestRisk := math.Inf(1)
	bestT := 0.0
	for _, candidate := range sorted {
		risk := sureRisk(normalized, candidate)
		if risk < bestRisk {
			bestRisk = risk
			bestT = candidate
		}
	}

	universal := math.Sqrt(2 * math.Log(float64(n)))
	if bestT > universal {
		bestT = universal
	}
	return bestT * sigma
}

// sureRisk computes Stein's Unbiased Risk Estimate for soft-thresholding
// normalized (sigma=1) coefficients at t: n - 2*#{|x_i|<=t} + sum(min(x_i^2, t^2)).
func sureRisk(normalized []float64, t float64) float64 {
	n := len(normalized)
	t2 := t * t
	count := 0
	var sumMin float64
	for _, x := range normalized {
		x2 := x * x
		if math.Abs(x) <= t {
			count++
		}
		if x2 < t2 {
			sumMin += x2
		} else {
			sumMin += t2
		}
	}
	return float64(n) - 2*float64(count) + sumMin
}

// Shrink applies the given shrinkage kind to every coefficient in place.
func Shrink(coeffs []float64, threshold float64, kind ThresholdKind) {
	for i, x := range coeffs {
		switch kind {
		case Hard:
			if math.Abs(x) <= threshold {
				coeffs[i] = 0
			}
		default:
			if x > threshold {
				coeffs[i] = x - threshold
			} else if x < -threshold {
				coeffs[i] = x + threshold
			} else {
				coeffs[i] = 0
			}
		}
	}
}
