package classify

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Engine is the narrow capability the pipeline needs from a model: one
// tensor in, one logit vector out. The real implementation is an ONNX
// Runtime session; tests use a stub.
type Engine interface {
	Name() string
	Invoke(input []float32) ([]float32, error)
}

// Model wraps an ONNX Runtime session with pre-bound input and output
// tensors. The session holds a single tensor pair, so invocations are
// serialized with a mutex.
type Model struct {
	name    string
	session *ort.AdvancedSession
	input   ort.Value
	output  ort.Value
	mu      sync.Mutex
}

// LoadModel loads the ONNX artifact at path into a session expecting a
// (1,3,32,32) float input and reading the model's first declared
// output, a 10-element logit vector.
func LoadModel(name, path string) (*Model, error) {
	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("get input/output info: %w", err)}
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("create session options: %w", err)}
	}
	inputTensor, err := ort.NewTensor(ort.NewShape(1, Channels, ImageSize, ImageSize), make([]float32, TensorLen))
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("create input tensor: %w", err)}
	}
	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(1, NumClasses))
	if err != nil {
		inputTensor.Destroy()
		return nil, &LoadError{Path: path, Err: fmt.Errorf("create output tensor: %w", err)}
	}

	session, err := ort.NewAdvancedSession(
		path,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		[]ort.Value{inputTensor},
		[]ort.Value{outputTensor},
		opts,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, &LoadError{Path: path, Err: fmt.Errorf("create session: %w", err)}
	}

	return &Model{
		name:    name,
		session: session,
		input:   inputTensor,
		output:  outputTensor,
	}, nil
}

func (m *Model) Name() string { return m.name }

func (m *Model) Invoke(input []float32) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.input.(*ort.Tensor[float32]).GetData(), input)
	if err := m.session.Run(); err != nil {
		return nil, err
	}

	out := m.output.(*ort.Tensor[float32]).GetData()
	logits := make([]float32, len(out))
	copy(logits, out)
	return logits, nil
}

func (m *Model) Close() {
	m.session.Destroy()
	m.input.Destroy()
	m.output.Destroy()
}
