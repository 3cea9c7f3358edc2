// Package inference owns the process-wide model runtime: a lazily loaded
// pair of models (a general-purpose image classifier and a multi-object
// detector) behind a small client interface so tests can substitute a fake
// without touching global state.
package inference

import (
	"context"
	"errors"
	"fmt"
)

// Model names understood by the serving backend.
const (
	ModelClassifier = "classifier"
	ModelDetector   = "detector"
)

// ErrNotReady indicates Infer was called before the models were loaded.
// This is a programmer error; callers are expected to EnsureLoaded first.
var ErrNotReady = errors.New("model runtime not ready")

// Classification is one ranked guess for the overall image content.
type Classification struct {
	Label       string
	Probability float64
}

// Detection is one discrete object found anywhere in the image. Only the
// class identity participates in the admission policy.
type Detection struct {
	ClassName string
	Score     float64
}

// Output carries the joined result of one inference pass. Classifications
// are ordered highest probability first.
type Output struct {
	Classifications []Classification
	Detections      []Detection
}

// ModelClient is the serving backend the runtime borrows models from.
type ModelClient interface {
	LoadModel(ctx context.Context, model string) error
	Classify(ctx context.Context, image []byte) ([]Classification, error)
	Detect(ctx context.Context, image []byte) ([]Detection, error)
}

// ModelLoadError indicates loading one of the models failed. The runtime
// reverts to Unloaded and the next EnsureLoaded retries.
type ModelLoadError struct {
	Model string
	Err   error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("load model %s: %v", e.Model, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }
