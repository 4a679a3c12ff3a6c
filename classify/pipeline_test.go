package classify

import (
	"errors"
	"testing"
)

type stubEngine struct {
	name   string
	logits []float32
	err    error
	calls  int
	inputs [][]float32
}

func (s *stubEngine) Name() string { return s.name }

func (s *stubEngine) Invoke(input []float32) ([]float32, error) {
	s.calls++
	s.inputs = append(s.inputs, input)
	if s.err != nil {
		return nil, s.err
	}
	return s.logits, nil
}

func TestPipelineClassifySingle(t *testing.T) {
	eng := &stubEngine{name: "fp32", logits: []float32{5, 1, 1, 1, 1, 1, 1, 1, 1, 1}}
	p := NewPipeline()

	results, err := p.Classify(grayBuffer(128), 3, eng)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Model != "fp32" {
		t.Errorf("Result model = %s, want fp32", results[0].Model)
	}
	if got := results[0].Predictions.Top().Label; got != "airplane" {
		t.Errorf("Top label = %s, want airplane", got)
	}
	if len(results[0].Predictions) != 3 {
		t.Errorf("Expected 3 ranked predictions, got %d", len(results[0].Predictions))
	}
}

func TestPipelineSharesTensor(t *testing.T) {
	a := &stubEngine{name: "fp32", logits: make([]float32, NumClasses)}
	b := &stubEngine{name: "int8", logits: make([]float32, NumClasses)}
	p := NewPipeline()

	if _, err := p.Classify(grayBuffer(200), 3, a, b); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("Expected one invocation per engine, got %d and %d", a.calls, b.calls)
	}
	ta, tb := a.inputs[0], b.inputs[0]
	if len(ta) != TensorLen {
		t.Fatalf("Tensor length %d, want %d", len(ta), TensorLen)
	}
	if &ta[0] != &tb[0] {
		t.Error("Engines must receive the same tensor, not a recomputed copy")
	}
}

func TestPipelineFailureNamesModel(t *testing.T) {
	a := &stubEngine{name: "fp32", logits: make([]float32, NumClasses)}
	b := &stubEngine{name: "int8", err: errors.New("shape mismatch")}
	p := NewPipeline()

	results, err := p.Classify(grayBuffer(0), 3, a, b)
	if results != nil {
		t.Error("Expected completed results to be discarded on failure")
	}
	var infErr *InferenceError
	if !errors.As(err, &infErr) {
		t.Fatalf("Expected InferenceError, got %v", err)
	}
	if infErr.Model != "int8" {
		t.Errorf("Error names model %s, want int8", infErr.Model)
	}
}

func TestPipelineFailsBeforeInvocation(t *testing.T) {
	eng := &stubEngine{name: "fp32", logits: make([]float32, NumClasses)}
	p := NewPipeline()

	_, err := p.Classify(make([]byte, 7), 3, eng)
	if !errors.Is(err, ErrBadPixelBuffer) {
		t.Fatalf("Expected ErrBadPixelBuffer, got %v", err)
	}
	if eng.calls != 0 {
		t.Errorf("Engine invoked %d times on bad input, want 0", eng.calls)
	}
}

func TestPipelineCompare(t *testing.T) {
	a := &stubEngine{name: "fp32", logits: []float32{5, 1, 1, 1, 1, 1, 1, 1, 1, 1}}
	b := &stubEngine{name: "int8", logits: []float32{4, 2, 1, 1, 1, 1, 1, 1, 1, 1}}
	p := NewPipeline()

	res, err := p.Compare(grayBuffer(50), 3, a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !res.Agreement {
		t.Error("Expected agreement, both stubs favor class 0")
	}
	if res.A.Model != "fp32" || res.B.Model != "int8" {
		t.Errorf("Result models = %s/%s, want fp32/int8", res.A.Model, res.B.Model)
	}
}
