package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/proofgate/internal/logging"
)

// SubmissionLog represents a persisted proof-submission attempt and the
// verdict that was forwarded to the ledger.
type SubmissionLog struct {
	ID                 uint      `gorm:"primaryKey"`
	RequestID          string    `gorm:"column:request_id;uniqueIndex;size:64"`
	ClaimantID         string    `gorm:"column:claimant_id;index;size:64"`
	OpportunityID      string    `gorm:"column:opportunity_id;index;size:64"`
	Category           string    `gorm:"column:category;size:32"`
	ContentHash        string    `gorm:"column:content_hash;size:128"`
	SHA1Hash           string    `gorm:"column:sha1_hash;index;size:40"`
	WithinRadius       bool      `gorm:"column:within_radius"`
	Verified           bool      `gorm:"column:verified"`
	Confidence         float64   `gorm:"column:confidence"`
	NeedsManualReview  bool      `gorm:"column:needs_manual_review"`
	LedgerSubmissionID string    `gorm:"column:ledger_submission_id;size:128"`
	Details            string    `gorm:"column:details;type:text"`
	ProcessingMs       int64     `gorm:"column:processing_ms"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (SubmissionLog) TableName() string {
	return "submission_logs"
}

// MetricsAggregation is the raw aggregate pulled from the log table.
type MetricsAggregation struct {
	TotalCount        int64
	VerifiedCount     int64
	ReviewCount       int64
	AverageConfidence float64
	AverageProcessing float64
}

// SubmissionRepository provides persistence APIs for submission logs.
type SubmissionRepository struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewSubmissionRepository creates a new repository instance.
func NewSubmissionRepository(db *gorm.DB, logger *zap.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:             db,
		logger:         logger.Named("submission_repository"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (r *SubmissionRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&SubmissionLog{})
}

// SaveLog persists a submission log entry.
func (r *SubmissionRepository) SaveLog(ctx context.Context, log *SubmissionLog) error {
	return r.executeWithRetry(ctx, "repository.save_log", log.RequestID, func() error {
		return r.db.WithContext(ctx).Create(log).Error
	})
}

// FindByRequestIDAndClaimant retrieves a submission log matching the
// request and its owner.
func (r *SubmissionRepository) FindByRequestIDAndClaimant(ctx context.Context, requestID, claimantID string) (*SubmissionLog, error) {
	var log SubmissionLog
	err := r.executeWithRetry(ctx, "repository.find_by_request", requestID, func() error {
		return r.db.WithContext(ctx).First(&log, "request_id = ? AND claimant_id = ?", requestID, claimantID).Error
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindDuplicatesByHash returns other submissions of the same image by the
// same claimant, excluding the given request.
func (r *SubmissionRepository) FindDuplicatesByHash(ctx context.Context, claimantID, sha1Hash, excludeRequestID string) ([]*SubmissionLog, error) {
	var logs []*SubmissionLog
	err := r.executeWithRetry(ctx, "repository.find_duplicates", excludeRequestID, func() error {
		return r.db.WithContext(ctx).
			Where("claimant_id = ? AND sha1_hash = ? AND request_id <> ?", claimantID, sha1Hash, excludeRequestID).
			Order("created_at desc").
			Find(&logs).Error
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// AggregateMetrics computes verification totals across all submission logs.
func (r *SubmissionRepository) AggregateMetrics(ctx context.Context) (*MetricsAggregation, error) {
	var agg MetricsAggregation
	err := r.executeWithRetry(ctx, "repository.aggregate_metrics", "", func() error {
		return r.db.WithContext(ctx).
			Model(&SubmissionLog{}).
			Select(
				"count(*) as total_count, " +
					"count(*) filter (where verified) as verified_count, " +
					"count(*) filter (where needs_manual_review) as review_count, " +
					"coalesce(avg(confidence), 0) as average_confidence, " +
					"coalesce(avg(processing_ms), 0) as average_processing",
			).
			Scan(&agg).Error
	})
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *SubmissionRepository) executeWithRetry(ctx context.Context, operation, requestID string, fn func() error) error {
	if r.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := r.initialBackoff
	opLogger := logging.WithOperation(r.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < r.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= r.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("database operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == r.retryAttempts-1 {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				opLogger.Error("database operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			}
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient database error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
