package usecase

import "context"

// MetricsSummary represents aggregated submission insights.
type MetricsSummary struct {
	TotalSubmissions           int64   `json:"total_submissions"`
	VerifiedSubmissions        int64   `json:"verified_submissions"`
	VerifiedRate               float64 `json:"verified_rate"`
	ManualReviewRate           float64 `json:"manual_review_rate"`
	AverageConfidence          float64 `json:"average_confidence"`
	AverageProcessingLatencyMs float64 `json:"average_processing_latency_ms"`
}

// GetMetricsSummary aggregates submission metrics from persisted logs.
func (uc *SubmissionUseCase) GetMetricsSummary(ctx context.Context) (*MetricsSummary, error) {
	aggregation, err := uc.repo.AggregateMetrics(ctx)
	if err != nil {
		return nil, err
	}

	summary := &MetricsSummary{
		TotalSubmissions:           aggregation.TotalCount,
		VerifiedSubmissions:        aggregation.VerifiedCount,
		AverageConfidence:          aggregation.AverageConfidence,
		AverageProcessingLatencyMs: aggregation.AverageProcessing,
	}

	if aggregation.TotalCount > 0 {
		summary.VerifiedRate = float64(aggregation.VerifiedCount) / float64(aggregation.TotalCount)
		summary.ManualReviewRate = float64(aggregation.ReviewCount) / float64(aggregation.TotalCount)
	}

	return summary, nil
}
