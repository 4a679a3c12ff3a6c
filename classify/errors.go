package classify

import (
	"errors"
	"fmt"
)

// ErrBadPixelBuffer is returned before any model invocation when the
// input buffer is not a 32x32 interleaved RGBA image.
var ErrBadPixelBuffer = errors.New("pixel buffer is not 32x32 RGBA")

// ErrZeroStd is returned when a normalization config carries a zero
// standard deviation.
var ErrZeroStd = errors.New("normalization std must be non-zero")

// LoadError reports a model artifact that could not be loaded into a
// session.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load model %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InferenceError reports a failed invocation of a loaded model. In a
// comparison request it aborts the whole request.
type InferenceError struct {
	Model string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference on model %s: %v", e.Model, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
