// Package gate combines the geofence membership check with the image
// verification verdict into the final admission decision and packages it
// for the ledger.
package gate

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/example/proofgate/internal/geo"
	"github.com/example/proofgate/internal/ledger"
	"github.com/example/proofgate/internal/verification"
	"github.com/example/proofgate/internal/vocab"
)

// Verifier is the slice of the verification coordinator the gate uses.
type Verifier interface {
	Verify(ctx context.Context, image []byte, cat vocab.Category) verification.Result
}

// Evaluation is the gate's decision for one submission attempt.
type Evaluation struct {
	WithinRadius bool                `json:"within_radius"`
	Verification verification.Result `json:"verification"`
	Admissible   bool                `json:"admissible"`
}

// SubmissionGate decides whether a claim may be attempted at all.
type SubmissionGate struct {
	verifier Verifier
	logger   *zap.Logger
}

// NewSubmissionGate constructs a gate over a verifier.
func NewSubmissionGate(verifier Verifier, logger *zap.Logger) *SubmissionGate {
	return &SubmissionGate{
		verifier: verifier,
		logger:   logger.Named("submission_gate"),
	}
}

// Evaluate applies the geofence as a hard precondition and, only when it
// holds, runs image verification. Failing the fence blocks submission
// entirely; no inference is spent on a claim that is rejected on location
// alone. Coordinate errors are caller errors and propagate.
func (g *SubmissionGate) Evaluate(ctx context.Context, point geo.Point, fence geo.Geofence, image []byte, cat vocab.Category) (Evaluation, error) {
	within, err := geo.WithinRadius(point, fence)
	if err != nil {
		return Evaluation{}, err
	}
	if !within {
		g.logger.Info("submission outside geofence",
			zap.Float64("radius_meters", fence.RadiusMeters))
		return Evaluation{WithinRadius: false, Admissible: false}, nil
	}

	result := g.verifier.Verify(ctx, image, cat)
	return Evaluation{
		WithinRadius: true,
		Verification: result,
		Admissible:   true,
	}, nil
}

// ProofRecord packages a verification outcome for the ledger call. The
// verdict travels as three independent fields; the ledger decides the final
// Pending/Approved/Rejected state.
func ProofRecord(opportunityID, contentHash string, point geo.Point, result verification.Result) ledger.ProofRecord {
	return ledger.ProofRecord{
		OpportunityID:       opportunityID,
		ContentHash:         contentHash,
		LatitudeMicro:       geo.MicroDegrees(point.Lat),
		LongitudeMicro:      geo.MicroDegrees(point.Lon),
		AIVerified:          result.Valid,
		AIConfidencePercent: confidencePercent(result.Confidence),
		NeedsManualReview:   result.NeedsManualReview,
	}
}

func confidencePercent(confidence float64) int {
	percent := int(math.Floor(confidence * 100))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
