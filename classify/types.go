package classify

import "time"

const (
	ImageSize  = 32
	Channels   = 3
	NumClasses = 10

	// raw pixel buffers are interleaved RGBA, row-major
	PixelBufferLen = ImageSize * ImageSize * 4
	TensorLen      = Channels * ImageSize * ImageSize
)

// DefaultLabels is the CIFAR-10 class table, index-aligned with the
// model output vector.
var DefaultLabels = []string{
	"airplane", "automobile", "bird", "cat", "deer",
	"dog", "frog", "horse", "ship", "truck",
}

// Normalization holds per-channel mean and standard deviation applied
// after scaling samples to [0,1]. Std values must be non-zero.
type Normalization struct {
	Mean [3]float32
	Std  [3]float32
}

var DefaultNormalization = Normalization{
	Mean: [3]float32{0.4914, 0.4822, 0.4465},
	Std:  [3]float32{0.2470, 0.2435, 0.2616},
}

type ClassPrediction struct {
	Label       string  `json:"label"`
	Probability float32 `json:"probability"`
}

// RankedPredictions is non-increasing by probability, ties broken by
// ascending class index.
type RankedPredictions []ClassPrediction

// Top returns the highest-ranked prediction.
func (r RankedPredictions) Top() ClassPrediction {
	return r[0]
}

// InferenceResult ties one model run's ranked predictions to its
// invocation latency. Elapsed covers the engine call only.
type InferenceResult struct {
	Model       string            `json:"model"`
	Predictions RankedPredictions `json:"predictions"`
	Elapsed     time.Duration     `json:"-"`
	ElapsedMs   float64           `json:"elapsed_ms"`
}

// ComparisonResult aggregates two InferenceResults. SpeedRatio is
// elapsed A over elapsed B; when B's time is zero or unmeasurable the
// ratio is reported undefined rather than infinite.
type ComparisonResult struct {
	A                 InferenceResult `json:"a"`
	B                 InferenceResult `json:"b"`
	Agreement         bool            `json:"agreement"`
	SpeedRatio        float64         `json:"speed_ratio"`
	SpeedRatioDefined bool            `json:"speed_ratio_defined"`
}
