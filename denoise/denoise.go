package denoise

import (
	"fmt"

	"github.com/Prophetizo/VectorWave/catalog"
	"github.com/Prophetizo/VectorWave/modwt"
	vectorwave "github.com/Prophetizo/VectorWave"
)

// Denoise runs a J-level MODWT decomposition of x, estimates noise sigma
// from the level-1 detail coefficients (MAD estimator), shrinks every
// level's detail coefficients by a per-level threshold, and reconstructs.
// The approximation coefficients are left untouched — only detail
// (high-frequency) coefficients carry the noise this removes.
func Denoise(w catalog.Wavelet, mode modwt.BoundaryMode, x []float64, levels int, method ThresholdMethod, kind ThresholdKind) ([]float64, error) {
	ml, err := modwt.Decompose(w, mode, x, levels)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	sigma := EstimateSigma(ml.Details[0])
	mut := ml.Clone()
	for _, detail := range mut.Details {
		t := Threshold(detail, sigma, method)
		Shrink(detail, t, kind)
	}

	out, err := modwt.Reconstruct(w, mode, mut.MultiLevelResult)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}
	return out, nil
}

// StreamingDenoiser applies Denoise independently to each fixed-size block
// of a stream, tracking noise sigma across blocks via a NoiseEstimator
// instead of re-estimating it from scratch within each (typically much
// shorter) block.
type StreamingDenoiser struct {
	w         catalog.Wavelet
	mode      modwt.BoundaryMode
	blockSize int
	method    ThresholdMethod
	kind      ThresholdKind
	levels    int
	estimator *NoiseEstimator

	samplesProcessed int64
}

// NewStreamingDenoiser returns a StreamingDenoiser. window sizes the
// internal NoiseEstimator's ring buffer (in samples); a common choice is a
// handful of blockSize, so the sigma estimate smooths over several blocks
// without lagging a genuine noise-level change by too much.
func NewStreamingDenoiser(w catalog.Wavelet, mode modwt.BoundaryMode, blockSize int, method ThresholdMethod, kind ThresholdKind, noiseMethod NoiseMethod, window int) (*StreamingDenoiser, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if blockSize < w.FilterLength() {
		return nil, fmt.Errorf("denoise: block size %d shorter than filter length %d: %w", blockSize, w.FilterLength(), vectorwave.ErrInvalidArgument)
	}
	levels := modwt.MaxLevels(blockSize, w.FilterLength())
	if levels < 1 {
		levels = 1
	}
	return &StreamingDenoiser{
		w:         w,
		mode:      mode,
		blockSize: blockSize,
		method:    method,
		kind:      kind,
		levels:    levels,
		estimator: NewNoiseEstimator(noiseMethod, window),
	}, nil
}

// Process denoises one block. len(block) must equal the configured
// blockSize.
func (d *StreamingDenoiser) Process(block []float64) ([]float64, error) {
	if len(block) != d.blockSize {
		return nil, fmt.Errorf("denoise: block length %d, want %d: %w", len(block), d.blockSize, vectorwave.ErrInvalidArgument)
	}

	ml, err := modwt.Decompose(d.w, d.mode, block, d.levels)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}

	sigma := d.estimator.Update(ml.Details[0])
	mut := ml.Clone()
	for _, detail := range mut.Details {
		t := Threshold(detail, sigma, d.method)
		Shrink(detail, t, d.kind)
	}

	out, err := modwt.Reconstruct(d.w, d.mode, mut.MultiLevelResult)
	if err != nil {
		return nil, fmt.Errorf("denoise: %w", err)
	}
	d.samplesProcessed += int64(len(block))
	return out, nil
}

// CurrentNoiseLevel returns the most recently estimated noise sigma. It is
// 0 before the first Process call or whenever the estimated sigma is
// degenerate (e.g. a block of all-zero detail coefficients) — this is
// documented behavior, not an error: a zero threshold is simply a no-op
// shrinkage.
func (d *StreamingDenoiser) CurrentNoiseLevel() float64 {
	return d.estimator.Sigma()
}

// SamplesProcessed returns the cumulative number of samples passed to
// Process so far.
func (d *StreamingDenoiser) SamplesProcessed() int64 {
	return d.samplesProcessed
}
