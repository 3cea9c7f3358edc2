package inference

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type state int

const (
	stateUnloaded state = iota
	stateLoading
	stateReady
)

// Runtime caches the two inference models for the process lifetime. State
// moves Unloaded -> Loading -> Ready; a failed load reverts to Unloaded so a
// later call can retry. At most one load is in flight at a time; concurrent
// callers await the same completion instead of triggering duplicates.
type Runtime struct {
	client ModelClient
	logger *zap.Logger

	mu      sync.Mutex
	state   state
	loading chan struct{}
	loadErr error
}

// NewRuntime constructs an unloaded runtime over the given serving client.
func NewRuntime(client ModelClient, logger *zap.Logger) *Runtime {
	return &Runtime{
		client: client,
		logger: logger.Named("model_runtime"),
	}
}

// Ready reports without blocking whether both models are loaded.
func (r *Runtime) Ready() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == stateReady
}

// EnsureLoaded loads the classifier and detector concurrently; both must
// succeed. Idempotent: once Ready it returns immediately. If another call
// is already loading, it waits for that load and returns its outcome.
func (r *Runtime) EnsureLoaded(ctx context.Context) error {
	r.mu.Lock()
	switch r.state {
	case stateReady:
		r.mu.Unlock()
		return nil
	case stateLoading:
		done := r.loading
		r.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
		}
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.state == stateReady {
			return nil
		}
		return r.loadErr
	}

	done := make(chan struct{})
	r.state = stateLoading
	r.loading = done
	r.mu.Unlock()

	r.logger.Info("loading models")
	err := r.loadModels(ctx)

	r.mu.Lock()
	if err != nil {
		r.state = stateUnloaded
		r.loadErr = err
		r.logger.Error("model load failed", zap.Error(err))
	} else {
		r.state = stateReady
		r.loadErr = nil
		r.logger.Info("models loaded")
	}
	r.loading = nil
	close(done)
	r.mu.Unlock()

	return err
}

func (r *Runtime) loadModels(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, model := range []string{ModelClassifier, ModelDetector} {
		model := model
		g.Go(func() error {
			if err := r.client.LoadModel(ctx, model); err != nil {
				return &ModelLoadError{Model: model, Err: err}
			}
			return nil
		})
	}
	return g.Wait()
}

// Infer runs the classifier and detector concurrently and joins both
// results. Scoring must never run on a partial result, so either both
// succeed or the call fails. Returns ErrNotReady before EnsureLoaded has
// completed.
func (r *Runtime) Infer(ctx context.Context, image []byte) (Output, error) {
	if !r.Ready() {
		return Output{}, ErrNotReady
	}

	var out Output
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		classifications, err := r.client.Classify(ctx, image)
		if err != nil {
			return err
		}
		out.Classifications = classifications
		return nil
	})
	g.Go(func() error {
		detections, err := r.client.Detect(ctx, image)
		if err != nil {
			return err
		}
		out.Detections = detections
		return nil
	})
	if err := g.Wait(); err != nil {
		return Output{}, err
	}
	return out, nil
}
