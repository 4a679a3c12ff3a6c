package classify

import (
	"time"
)

// Pipeline runs one or two engines over preprocessed pixel buffers.
// It holds no state besides the engine handles and the fixed label
// table and normalization, so one Pipeline is safe across requests.
type Pipeline struct {
	Labels []string
	Norm   Normalization
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		Labels: DefaultLabels,
		Norm:   DefaultNormalization,
	}
}

// run measures wall-clock time around the engine invocation only;
// preprocessing and ranking stay outside the interval.
func (p *Pipeline) run(eng Engine, tensor []float32, k int) (InferenceResult, error) {
	start := time.Now()
	logits, err := eng.Invoke(tensor)
	elapsed := time.Since(start)
	if err != nil {
		return InferenceResult{}, &InferenceError{Model: eng.Name(), Err: err}
	}

	return InferenceResult{
		Model:       eng.Name(),
		Predictions: TopK(logits, p.Labels, k),
		Elapsed:     elapsed,
		ElapsedMs:   float64(elapsed) / float64(time.Millisecond),
	}, nil
}

// Classify preprocesses the pixel buffer once and runs it through each
// engine in order. Any engine failure aborts the request: completed
// results are discarded and the error names the failing model. The
// engines slice must hold one or two entries.
func (p *Pipeline) Classify(pixels []byte, k int, engines ...Engine) ([]InferenceResult, error) {
	tensor, err := Preprocess(pixels, p.Norm)
	if err != nil {
		return nil, err
	}

	results := make([]InferenceResult, 0, len(engines))
	for _, eng := range engines {
		res, err := p.run(eng, tensor, k)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Compare runs both engines against the same tensor and aggregates the
// two results. All-or-nothing: one failed invocation fails the whole
// comparison.
func (p *Pipeline) Compare(pixels []byte, k int, a, b Engine) (*ComparisonResult, error) {
	results, err := p.Classify(pixels, k, a, b)
	if err != nil {
		return nil, err
	}
	res := Report(results[0], results[1])
	return &res, nil
}
