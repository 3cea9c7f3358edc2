// Package verification orchestrates one image through the inference,
// matching, scoring, and diagnostics pipeline and degrades every internal
// failure to a manual-review verdict.
package verification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/example/proofgate/internal/diagnostics"
	"github.com/example/proofgate/internal/inference"
	"github.com/example/proofgate/internal/scoring"
	"github.com/example/proofgate/internal/vocab"
)

// Result is the structured verdict for one image.
type Result struct {
	Valid             bool     `json:"is_valid"`
	Confidence        float64  `json:"confidence"`
	DetectedObjects   []string `json:"detected_objects"`
	Suggestions       []string `json:"suggestions"`
	NeedsManualReview bool     `json:"needs_manual_review"`
}

// Summary is the aggregate verdict across a batch of images.
type Summary struct {
	Valid             bool    `json:"is_valid"`
	AverageConfidence float64 `json:"average_confidence"`
	NeedsManualReview bool    `json:"needs_manual_review"`
}

// ModelRuntime is the slice of the inference runtime the coordinator uses.
type ModelRuntime interface {
	EnsureLoaded(ctx context.Context) error
	Infer(ctx context.Context, image []byte) (inference.Output, error)
}

// Coordinator runs the verification pipeline for single images and batches.
type Coordinator struct {
	runtime ModelRuntime
	policy  scoring.Policy
	logger  *zap.Logger
}

// NewCoordinator constructs a coordinator over a model runtime.
func NewCoordinator(runtime ModelRuntime, policy scoring.Policy, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		runtime: runtime,
		policy:  policy,
		logger:  logger.Named("verification"),
	}
}

// fallbackResult is returned whenever the pipeline fails. Verification
// failure must degrade to "send to a human", never to silent rejection or
// silent acceptance.
func fallbackResult() Result {
	return Result{
		Valid:             false,
		Confidence:        0,
		DetectedObjects:   nil,
		Suggestions:       []string{"verification failed, manual review required"},
		NeedsManualReview: true,
	}
}

// Verify runs one image through the full pipeline. It never returns an
// error: any failure yields the fallback result.
func (c *Coordinator) Verify(ctx context.Context, image []byte, cat vocab.Category) Result {
	if err := c.runtime.EnsureLoaded(ctx); err != nil {
		c.logger.Error("model load failed, falling back to manual review", zap.Error(err))
		return fallbackResult()
	}

	out, err := c.runtime.Infer(ctx, image)
	if err != nil {
		c.logger.Error("inference failed, falling back to manual review", zap.Error(err))
		return fallbackResult()
	}

	// Combined label multiset: detections first, then classifications,
	// everything lowercased. A deduplicated detected-object list is kept
	// separately for the result.
	allLabels := make([]string, 0, len(out.Detections)+len(out.Classifications))
	detected := make([]string, 0, len(out.Detections))
	seen := make(map[string]struct{}, len(out.Detections))
	for _, d := range out.Detections {
		name := strings.ToLower(d.ClassName)
		allLabels = append(allLabels, name)
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			detected = append(detected, name)
		}
	}
	for _, cl := range out.Classifications {
		allLabels = append(allLabels, strings.ToLower(cl.Label))
	}

	matched := vocab.Match(allLabels, cat)

	topProbability := 0.0
	if len(out.Classifications) > 0 {
		topProbability = out.Classifications[0].Probability
	}

	score := c.policy.Score(topProbability, allLabels, matched)

	return Result{
		Valid:             score.Valid,
		Confidence:        score.Confidence,
		DetectedObjects:   detected,
		Suggestions:       diagnostics.Suggestions(score.Valid, matched, detected, cat),
		NeedsManualReview: score.NeedsManualReview,
	}
}

// VerifyBatch verifies each image independently, preserving order. A
// failure on one image does not affect the others.
func (c *Coordinator) VerifyBatch(ctx context.Context, images [][]byte, cat vocab.Category) []Result {
	results := make([]Result, len(images))
	for i, image := range images {
		results[i] = c.Verify(ctx, image, cat)
	}
	return results
}

// Aggregate folds a batch of results into one verdict. Validity follows
// majority rule with ties rounding up (ceil(n/2)); review is required when
// any individual result needs it or the majority was missed. An empty batch
// is never valid and always flagged.
func Aggregate(results []Result) Summary {
	if len(results) == 0 {
		return Summary{Valid: false, AverageConfidence: 0, NeedsManualReview: true}
	}

	validCount := 0
	anyReview := false
	sum := 0.0
	for _, r := range results {
		if r.Valid {
			validCount++
		}
		if r.NeedsManualReview {
			anyReview = true
		}
		sum += r.Confidence
	}

	majority := validCount*2 >= len(results)
	return Summary{
		Valid:             majority,
		AverageConfidence: sum / float64(len(results)),
		NeedsManualReview: anyReview || !majority,
	}
}
