package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/proofgate/internal/gate"
	"github.com/example/proofgate/internal/geo"
	"github.com/example/proofgate/internal/ledger"
	"github.com/example/proofgate/internal/logging"
	"github.com/example/proofgate/internal/repository"
	"github.com/example/proofgate/internal/storage"
	"github.com/example/proofgate/internal/vocab"
)

// ErrOutsideGeofence indicates the claimant was not within the
// opportunity's allowed radius. The geofence is a hard precondition:
// nothing is uploaded or submitted when it fails.
var ErrOutsideGeofence = errors.New("claimant outside opportunity geofence")

// SubmissionRepository defines the persistence operations needed by the use case.
type SubmissionRepository interface {
	SaveLog(ctx context.Context, log *repository.SubmissionLog) error
	FindByRequestIDAndClaimant(ctx context.Context, requestID, claimantID string) (*repository.SubmissionLog, error)
	FindDuplicatesByHash(ctx context.Context, claimantID, sha1Hash, excludeRequestID string) ([]*repository.SubmissionLog, error)
	AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error)
}

// Gate decides admissibility for one submission attempt.
type Gate interface {
	Evaluate(ctx context.Context, point geo.Point, fence geo.Geofence, image []byte, cat vocab.Category) (gate.Evaluation, error)
}

// SubmitRequest carries one proof-submission attempt.
type SubmitRequest struct {
	ClaimantID    string
	OpportunityID string
	Filename      string
	Image         []byte
	// Location is the device-reported position. A nil location is a
	// distinct precondition failure, never a zero-distance pass.
	Location *geo.Point
}

// Outcome is the result of a completed submission attempt.
type Outcome struct {
	RequestID          string              `json:"request_id"`
	Evaluation         gate.Evaluation     `json:"evaluation"`
	ContentHash        string              `json:"content_hash"`
	LedgerSubmissionID string              `json:"ledger_submission_id"`
}

// SubmissionUseCase orchestrates the gate, content store, ledger,
// persistence, and cache for the proof-submission flow.
type SubmissionUseCase struct {
	repo           SubmissionRepository
	cache          Cache
	gate           Gate
	store          storage.ContentStore
	ledger         ledger.Ledger
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

type cachedSubmission struct {
	RequestID          string    `json:"request_id"`
	ClaimantID         string    `json:"claimant_id"`
	OpportunityID      string    `json:"opportunity_id"`
	ContentHash        string    `json:"content_hash"`
	Verified           bool      `json:"verified"`
	Confidence         float64   `json:"confidence"`
	NeedsManualReview  bool      `json:"needs_manual_review"`
	WithinRadius       bool      `json:"within_radius"`
	LedgerSubmissionID string    `json:"ledger_submission_id"`
	Details            string    `json:"details"`
	Hash               string    `json:"sha1_hash"`
	CreatedAt          time.Time `json:"created_at"`
}

// DuplicateReport represents duplicate submissions of the same image.
type DuplicateReport struct {
	Request    *repository.SubmissionLog
	Duplicates []*repository.SubmissionLog
}

// NewSubmissionUseCase constructs a new use case instance.
func NewSubmissionUseCase(repo SubmissionRepository, cache Cache, g Gate, store storage.ContentStore, l ledger.Ledger, logger *zap.Logger) *SubmissionUseCase {
	return &SubmissionUseCase{
		repo:           repo,
		cache:          cache,
		gate:           g,
		store:          store,
		ledger:         l,
		logger:         logger.Named("submission_usecase"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// SubmitProof runs the full flow: geofence precondition, image
// verification, content upload, ledger submission, persistence, caching.
//
// Geofence, coordinate, upload, and ledger errors are caller-visible;
// only the inference pipeline degrades silently (inside the gate's
// verifier) to a manual-review verdict.
func (uc *SubmissionUseCase) SubmitProof(ctx context.Context, req SubmitRequest) (*Outcome, error) {
	start := time.Now()
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.submit_proof", requestID)

	if req.Location == nil {
		return nil, geo.ErrNoLocation
	}

	cacheKey := fmt.Sprintf("submission:%s", requestID)
	if err := uc.withRedisRetry(ctx, requestID, "cache.set.processing", func() error {
		return uc.cache.Set(ctx, cacheKey, "processing", time.Minute)
	}); err != nil {
		opLogger.Error("failed to set processing flag", zap.Error(err))
		return nil, err
	}

	opportunity, err := uc.ledger.GetOpportunity(ctx, req.OpportunityID)
	if err != nil {
		uc.clearProcessing(ctx, requestID, cacheKey)
		opLogger.Error("failed to load opportunity", zap.Error(err))
		return nil, err
	}

	fence := geo.Geofence{
		Center: geo.Point{
			Lat: float64(opportunity.LatitudeMicro) / 1e6,
			Lon: float64(opportunity.LongitudeMicro) / 1e6,
		},
		RadiusMeters: opportunity.RadiusMeters,
	}
	category := vocab.ParseCategory(opportunity.Category)

	evaluation, err := uc.gate.Evaluate(ctx, *req.Location, fence, req.Image, category)
	if err != nil {
		uc.clearProcessing(ctx, requestID, cacheKey)
		return nil, err
	}
	if !evaluation.Admissible {
		uc.clearProcessing(ctx, requestID, cacheKey)
		opLogger.Info("submission blocked by geofence",
			zap.String("opportunity_id", req.OpportunityID))
		return nil, fmt.Errorf("%w: opportunity %s", ErrOutsideGeofence, req.OpportunityID)
	}

	contentHash, err := uc.store.Upload(ctx, req.Filename, req.Image)
	if err != nil {
		uc.clearProcessing(ctx, requestID, cacheKey)
		wrapped := logging.NewOperationError("usecase.upload_content", requestID, err)
		opLogger.Error("content upload failed", zap.Error(wrapped))
		return nil, wrapped
	}

	record := gate.ProofRecord(req.OpportunityID, contentHash, *req.Location, evaluation.Verification)
	submissionID, err := uc.ledger.SubmitProof(ctx, record)
	if err != nil {
		uc.clearProcessing(ctx, requestID, cacheKey)
		wrapped := logging.NewOperationError("usecase.submit_ledger", requestID, err)
		opLogger.Error("ledger submission failed", zap.Error(wrapped))
		return nil, wrapped
	}

	hash := sha1.Sum(req.Image)
	hashHex := hex.EncodeToString(hash[:])
	log := &repository.SubmissionLog{
		RequestID:          requestID,
		ClaimantID:         req.ClaimantID,
		OpportunityID:      req.OpportunityID,
		Category:           string(category),
		ContentHash:        contentHash,
		SHA1Hash:           hashHex,
		WithinRadius:       evaluation.WithinRadius,
		Verified:           evaluation.Verification.Valid,
		Confidence:         evaluation.Verification.Confidence,
		NeedsManualReview:  evaluation.Verification.NeedsManualReview,
		LedgerSubmissionID: submissionID,
		ProcessingMs:       time.Since(start).Milliseconds(),
		CreatedAt:          time.Now().UTC(),
	}
	log.Details = fmt.Sprintf("verified:%t confidence:%f review:%t hash:%s",
		log.Verified, log.Confidence, log.NeedsManualReview, hashHex)
	if err := uc.repo.SaveLog(ctx, log); err != nil {
		wrapped := logging.NewOperationError("usecase.save_log", requestID, err)
		opLogger.Error("failed to persist submission log", zap.Error(wrapped))
		return nil, wrapped
	}

	cached := cachedSubmission{
		RequestID:          requestID,
		ClaimantID:         req.ClaimantID,
		OpportunityID:      req.OpportunityID,
		ContentHash:        contentHash,
		Verified:           log.Verified,
		Confidence:         log.Confidence,
		NeedsManualReview:  log.NeedsManualReview,
		WithinRadius:       log.WithinRadius,
		LedgerSubmissionID: submissionID,
		Details:            log.Details,
		Hash:               hashHex,
		CreatedAt:          log.CreatedAt,
	}
	serialized, err := json.Marshal(cached)
	if err != nil {
		opLogger.Error("failed to serialize submission outcome", zap.Error(err))
		return nil, err
	}
	if err := uc.withRedisRetry(ctx, requestID, "cache.set.result", func() error {
		return uc.cache.Set(ctx, cacheKey, string(serialized), 5*time.Minute)
	}); err != nil {
		opLogger.Error("failed to cache submission outcome", zap.Error(err))
		return nil, err
	}

	return &Outcome{
		RequestID:          requestID,
		Evaluation:         evaluation,
		ContentHash:        contentHash,
		LedgerSubmissionID: submissionID,
	}, nil
}

// GetResult retrieves a cached submission outcome or loads from persistence.
func (uc *SubmissionUseCase) GetResult(ctx context.Context, claimantID, requestID string) (*repository.SubmissionLog, error) {
	cacheKey := fmt.Sprintf("submission:%s", requestID)
	if cached, err := uc.withRedisGet(ctx, requestID, "cache.get.result", cacheKey); err == nil {
		var payload cachedSubmission
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to decode cached result", zap.Error(err))
		} else if payload.ClaimantID == claimantID {
			return &repository.SubmissionLog{
				RequestID:          payload.RequestID,
				ClaimantID:         payload.ClaimantID,
				OpportunityID:      payload.OpportunityID,
				ContentHash:        payload.ContentHash,
				SHA1Hash:           payload.Hash,
				WithinRadius:       payload.WithinRadius,
				Verified:           payload.Verified,
				Confidence:         payload.Confidence,
				NeedsManualReview:  payload.NeedsManualReview,
				LedgerSubmissionID: payload.LedgerSubmissionID,
				Details:            payload.Details,
				CreatedAt:          payload.CreatedAt,
			}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to read cache", zap.Error(err))
	}

	return uc.repo.FindByRequestIDAndClaimant(ctx, requestID, claimantID)
}

// GetDuplicateReport builds a duplicate detection report for a submission.
func (uc *SubmissionUseCase) GetDuplicateReport(ctx context.Context, claimantID, requestID string) (*DuplicateReport, error) {
	log, err := uc.repo.FindByRequestIDAndClaimant(ctx, requestID, claimantID)
	if err != nil {
		return nil, err
	}

	duplicates, err := uc.repo.FindDuplicatesByHash(ctx, claimantID, log.SHA1Hash, log.RequestID)
	if err != nil {
		return nil, err
	}

	return &DuplicateReport{
		Request:    log,
		Duplicates: duplicates,
	}, nil
}

func (uc *SubmissionUseCase) clearProcessing(ctx context.Context, requestID, cacheKey string) {
	if err := uc.cache.Del(ctx, cacheKey); err != nil {
		logging.WithOperation(uc.logger, "cache.del.processing", requestID).Warn("failed to clear processing flag", zap.Error(err))
	}
}

func (uc *SubmissionUseCase) withRedisRetry(ctx context.Context, requestID, operation string, fn func() error) error {
	if uc.retryAttempts <= 1 {
		err := fn()
		return logging.NewOperationError(operation, requestID, err)
	}

	backoff := uc.initialBackoff
	opLogger := logging.WithOperation(uc.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < uc.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= uc.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == uc.retryAttempts-1 {
			opLogger.Error("redis operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func (uc *SubmissionUseCase) withRedisGet(ctx context.Context, requestID, operation, cacheKey string) (string, error) {
	var result string
	err := uc.withRedisRetry(ctx, requestID, operation, func() error {
		value, err := uc.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
