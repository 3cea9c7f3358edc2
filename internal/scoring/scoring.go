// Package scoring blends classifier certainty and vocabulary-match ratio
// into a single admission confidence and a pass/fail/needs-review verdict.
package scoring

// Policy thresholds encode a business decision, not a law of nature. They
// are exposed as named, overridable values rather than inlined.
const (
	// DefaultMinValidConfidence is the floor above which a matched image
	// may be auto-accepted.
	DefaultMinValidConfidence = 0.30

	// DefaultReviewConfidence is the floor below which an outcome is
	// flagged for manual review even when it passed.
	DefaultReviewConfidence = 0.60
)

// Policy holds the admission thresholds.
type Policy struct {
	MinValidConfidence float64
	ReviewConfidence   float64
}

// DefaultPolicy returns the production thresholds.
func DefaultPolicy() Policy {
	return Policy{
		MinValidConfidence: DefaultMinValidConfidence,
		ReviewConfidence:   DefaultReviewConfidence,
	}
}

// Score is the verdict for one image.
type Score struct {
	Confidence        float64
	Valid             bool
	NeedsManualReview bool
}

// Score computes the blended confidence for one image.
//
// Confidence is the arithmetic mean of the top classification probability
// and the fraction of labels that matched the active vocabulary (0 when no
// labels were produced). An image can be valid and still flagged for review
// when its confidence falls between the two thresholds; automatic
// accept/reject is gated by Valid, but pre-approved-but-flagged is a legal
// output state downstream policy must honor.
func (p Policy) Score(topProbability float64, allLabels, matched []string) Score {
	matchRatio := 0.0
	if len(allLabels) > 0 {
		matchRatio = float64(len(matched)) / float64(len(allLabels))
	}

	confidence := (topProbability + matchRatio) / 2

	return Score{
		Confidence:        confidence,
		Valid:             len(matched) > 0 && confidence > p.MinValidConfidence,
		NeedsManualReview: confidence < p.ReviewConfidence || len(matched) == 0,
	}
}
