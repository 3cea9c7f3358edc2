package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/proofgate/internal/gate"
	"github.com/example/proofgate/internal/geo"
	"github.com/example/proofgate/internal/ledger"
	"github.com/example/proofgate/internal/logging"
	"github.com/example/proofgate/internal/repository"
	"github.com/example/proofgate/internal/verification"
	"github.com/example/proofgate/internal/vocab"
)

type stubRepository struct {
	savedLogs   []*repository.SubmissionLog
	saveErr     error
	findLog     *repository.SubmissionLog
	findErr     error
	findCalls   int
	duplicates  []*repository.SubmissionLog
	aggregation *repository.MetricsAggregation
}

func (s *stubRepository) SaveLog(ctx context.Context, log *repository.SubmissionLog) error {
	s.savedLogs = append(s.savedLogs, log)
	return s.saveErr
}

func (s *stubRepository) FindByRequestIDAndClaimant(ctx context.Context, requestID, claimantID string) (*repository.SubmissionLog, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.findLog != nil {
		return s.findLog, nil
	}
	return nil, errors.New("not found")
}

func (s *stubRepository) FindDuplicatesByHash(ctx context.Context, claimantID, sha1Hash, excludeRequestID string) ([]*repository.SubmissionLog, error) {
	return s.duplicates, nil
}

func (s *stubRepository) AggregateMetrics(ctx context.Context) (*repository.MetricsAggregation, error) {
	if s.aggregation != nil {
		return s.aggregation, nil
	}
	return &repository.MetricsAggregation{}, nil
}

type stubCache struct {
	setErrs   []error
	getErrs   []error
	getValues []string
	setKeys   []string
	getKeys   []string
	delKeys   []string
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.setKeys = append(s.setKeys, key)
	if len(s.setErrs) == 0 {
		return nil
	}
	err := s.setErrs[0]
	s.setErrs = s.setErrs[1:]
	return err
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	s.getKeys = append(s.getKeys, key)
	var value string
	if len(s.getValues) > 0 {
		value = s.getValues[0]
		s.getValues = s.getValues[1:]
	}
	var err error
	if len(s.getErrs) > 0 {
		err = s.getErrs[0]
		s.getErrs = s.getErrs[1:]
	}
	return value, err
}

func (s *stubCache) Del(ctx context.Context, key string) error {
	s.delKeys = append(s.delKeys, key)
	return nil
}

type stubGate struct {
	evaluation gate.Evaluation
	err        error
	calls      int
}

func (s *stubGate) Evaluate(ctx context.Context, point geo.Point, fence geo.Geofence, image []byte, cat vocab.Category) (gate.Evaluation, error) {
	s.calls++
	if s.err != nil {
		return gate.Evaluation{}, s.err
	}
	return s.evaluation, nil
}

type stubStore struct {
	hash    string
	err     error
	uploads int
}

func (s *stubStore) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	s.uploads++
	if s.err != nil {
		return "", s.err
	}
	return s.hash, nil
}

func (s *stubStore) URLFor(contentHash string) string {
	return "https://gateway.example/ipfs/" + contentHash
}

type stubLedger struct {
	opportunity  *ledger.OpportunityRecord
	opErr        error
	submissionID string
	submitErr    error
	submitted    []ledger.ProofRecord
}

func (s *stubLedger) GetOpportunity(ctx context.Context, opportunityID string) (*ledger.OpportunityRecord, error) {
	if s.opErr != nil {
		return nil, s.opErr
	}
	return s.opportunity, nil
}

func (s *stubLedger) SubmitProof(ctx context.Context, record ledger.ProofRecord) (string, error) {
	s.submitted = append(s.submitted, record)
	if s.submitErr != nil {
		return "", s.submitErr
	}
	return s.submissionID, nil
}

type transientRedisError struct{}

func (transientRedisError) Error() string   { return "redis transient" }
func (transientRedisError) Timeout() bool   { return true }
func (transientRedisError) Temporary() bool { return true }

func admissibleEvaluation() gate.Evaluation {
	return gate.Evaluation{
		WithinRadius: true,
		Verification: verification.Result{
			Valid:           true,
			Confidence:      0.9,
			DetectedObjects: []string{"plant", "field"},
		},
		Admissible: true,
	}
}

func testOpportunity() *ledger.OpportunityRecord {
	return &ledger.OpportunityRecord{
		SchemaVersion:  1,
		OpportunityID:  "opp-1",
		Category:       "farming",
		LatitudeMicro:  52_370_000,
		LongitudeMicro: 4_890_000,
		RadiusMeters:   500,
		Active:         true,
	}
}

func validRequest() SubmitRequest {
	return SubmitRequest{
		ClaimantID:    "claimant-1",
		OpportunityID: "opp-1",
		Filename:      "proof.jpg",
		Image:         []byte("image"),
		Location:      &geo.Point{Lat: 52.37, Lon: 4.89},
	}
}

func TestSubmitProofRetriesRedisSet(t *testing.T) {
	cache := &stubCache{setErrs: []error{transientRedisError{}}}
	repo := &stubRepository{}
	g := &stubGate{evaluation: admissibleEvaluation()}
	store := &stubStore{hash: "QmHash"}
	ldg := &stubLedger{opportunity: testOpportunity(), submissionID: "sub-1"}
	uc := NewSubmissionUseCase(repo, cache, g, store, ldg, zap.NewNop())

	outcome, err := uc.SubmitProof(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if outcome.ContentHash != "QmHash" {
		t.Fatalf("unexpected content hash: %s", outcome.ContentHash)
	}
	if outcome.LedgerSubmissionID != "sub-1" {
		t.Fatalf("unexpected ledger submission id: %s", outcome.LedgerSubmissionID)
	}
	if len(cache.setKeys) < 3 {
		t.Fatalf("expected at least 3 cache set calls (retry + result), got %d", len(cache.setKeys))
	}
	if cache.setKeys[0] != cache.setKeys[1] {
		t.Fatalf("expected retry to target same key, got %s and %s", cache.setKeys[0], cache.setKeys[1])
	}
	if len(repo.savedLogs) != 1 {
		t.Fatalf("expected log to be saved, got %d entries", len(repo.savedLogs))
	}
	saved := repo.savedLogs[0]
	if !saved.Verified || saved.Confidence != 0.9 {
		t.Fatalf("unexpected saved verdict: verified=%t confidence=%f", saved.Verified, saved.Confidence)
	}
	if saved.Category != "farming" {
		t.Fatalf("unexpected category: %s", saved.Category)
	}
}

func TestSubmitProofReturnsOperationErrorOnCacheFailure(t *testing.T) {
	cache := &stubCache{setErrs: []error{errors.New("boom")}}
	repo := &stubRepository{}
	g := &stubGate{evaluation: admissibleEvaluation()}
	uc := NewSubmissionUseCase(repo, cache, g, &stubStore{hash: "QmHash"}, &stubLedger{opportunity: testOpportunity()}, zap.NewNop())

	_, err := uc.SubmitProof(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "cache.set.processing" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}
}

func TestSubmitProofRequiresLocation(t *testing.T) {
	cache := &stubCache{}
	uc := NewSubmissionUseCase(&stubRepository{}, cache, &stubGate{}, &stubStore{}, &stubLedger{}, zap.NewNop())

	req := validRequest()
	req.Location = nil
	_, err := uc.SubmitProof(context.Background(), req)
	if !errors.Is(err, geo.ErrNoLocation) {
		t.Fatalf("expected ErrNoLocation, got %v", err)
	}
	if len(cache.setKeys) != 0 {
		t.Fatalf("expected no cache writes without a location, got %d", len(cache.setKeys))
	}
}

func TestSubmitProofBlockedOutsideGeofence(t *testing.T) {
	cache := &stubCache{}
	store := &stubStore{hash: "QmHash"}
	ldg := &stubLedger{opportunity: testOpportunity()}
	g := &stubGate{evaluation: gate.Evaluation{WithinRadius: false, Admissible: false}}
	uc := NewSubmissionUseCase(&stubRepository{}, cache, g, store, ldg, zap.NewNop())

	_, err := uc.SubmitProof(context.Background(), validRequest())
	if !errors.Is(err, ErrOutsideGeofence) {
		t.Fatalf("expected ErrOutsideGeofence, got %v", err)
	}
	if store.uploads != 0 {
		t.Fatalf("expected no uploads for inadmissible submission, got %d", store.uploads)
	}
	if len(ldg.submitted) != 0 {
		t.Fatalf("expected no ledger submissions, got %d", len(ldg.submitted))
	}
	if len(cache.delKeys) != 1 {
		t.Fatalf("expected processing flag to be cleared once, got %d deletes", len(cache.delKeys))
	}
	if !strings.HasPrefix(cache.delKeys[0], "submission:") {
		t.Fatalf("unexpected deleted key: %s", cache.delKeys[0])
	}
}

func TestSubmitProofWrapsUploadFailure(t *testing.T) {
	uploadErr := errors.New("pin service down")
	store := &stubStore{err: uploadErr}
	cache := &stubCache{}
	g := &stubGate{evaluation: admissibleEvaluation()}
	uc := NewSubmissionUseCase(&stubRepository{}, cache, g, store, &stubLedger{opportunity: testOpportunity()}, zap.NewNop())

	_, err := uc.SubmitProof(context.Background(), validRequest())
	if !errors.Is(err, uploadErr) {
		t.Fatalf("expected upload error to propagate, got %v", err)
	}
	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "usecase.upload_content" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}
	if len(cache.delKeys) != 1 {
		t.Fatalf("expected processing flag to be cleared, got %d deletes", len(cache.delKeys))
	}
}

func TestSubmitProofForwardsProofRecordToLedger(t *testing.T) {
	ldg := &stubLedger{opportunity: testOpportunity(), submissionID: "sub-9"}
	g := &stubGate{evaluation: admissibleEvaluation()}
	uc := NewSubmissionUseCase(&stubRepository{}, &stubCache{}, g, &stubStore{hash: "QmHash"}, ldg, zap.NewNop())

	_, err := uc.SubmitProof(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(ldg.submitted) != 1 {
		t.Fatalf("expected one ledger submission, got %d", len(ldg.submitted))
	}
	record := ldg.submitted[0]
	if record.OpportunityID != "opp-1" || record.ContentHash != "QmHash" {
		t.Fatalf("unexpected record identity: %+v", record)
	}
	if record.LatitudeMicro != 52_370_000 || record.LongitudeMicro != 4_890_000 {
		t.Fatalf("unexpected micro-degree coordinates: %d, %d", record.LatitudeMicro, record.LongitudeMicro)
	}
	if !record.AIVerified || record.AIConfidencePercent != 90 {
		t.Fatalf("unexpected verdict fields: %+v", record)
	}
}

func TestGetResultFallsBackToRepositoryWhenCacheMiss(t *testing.T) {
	cache := &stubCache{getErrs: []error{redis.Nil}}
	expected := &repository.SubmissionLog{RequestID: "req", ClaimantID: "claimant", Details: "from-db"}
	repo := &stubRepository{findLog: expected}
	uc := NewSubmissionUseCase(repo, cache, &stubGate{}, &stubStore{}, &stubLedger{}, zap.NewNop())

	log, err := uc.GetResult(context.Background(), "claimant", "req")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if log != expected {
		t.Fatalf("expected %+v, got %+v", expected, log)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected repository to be queried once, got %d", repo.findCalls)
	}
}

func TestGetResultIgnoresCachedOutcomeOfOtherClaimant(t *testing.T) {
	cached := `{"request_id":"req","claimant_id":"someone-else","verified":true}`
	cache := &stubCache{getValues: []string{cached}}
	expected := &repository.SubmissionLog{RequestID: "req", ClaimantID: "claimant"}
	repo := &stubRepository{findLog: expected}
	uc := NewSubmissionUseCase(repo, cache, &stubGate{}, &stubStore{}, &stubLedger{}, zap.NewNop())

	log, err := uc.GetResult(context.Background(), "claimant", "req")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if log != expected {
		t.Fatalf("expected repository log, got %+v", log)
	}
}

func TestGetDuplicateReport(t *testing.T) {
	original := &repository.SubmissionLog{RequestID: "req", ClaimantID: "claimant", SHA1Hash: "abc"}
	dup := &repository.SubmissionLog{RequestID: "req-2", ClaimantID: "claimant", SHA1Hash: "abc"}
	repo := &stubRepository{findLog: original, duplicates: []*repository.SubmissionLog{dup}}
	uc := NewSubmissionUseCase(repo, &stubCache{}, &stubGate{}, &stubStore{}, &stubLedger{}, zap.NewNop())

	report, err := uc.GetDuplicateReport(context.Background(), "claimant", "req")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if report.Request != original {
		t.Fatalf("unexpected request log: %+v", report.Request)
	}
	if len(report.Duplicates) != 1 || report.Duplicates[0] != dup {
		t.Fatalf("unexpected duplicates: %+v", report.Duplicates)
	}
}

func TestGetMetricsSummaryComputesRates(t *testing.T) {
	repo := &stubRepository{aggregation: &repository.MetricsAggregation{
		TotalCount:        10,
		VerifiedCount:     7,
		ReviewCount:       4,
		AverageConfidence: 0.66,
		AverageProcessing: 120,
	}}
	uc := NewSubmissionUseCase(repo, &stubCache{}, &stubGate{}, &stubStore{}, &stubLedger{}, zap.NewNop())

	summary, err := uc.GetMetricsSummary(context.Background())
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if summary.VerifiedRate != 0.7 {
		t.Fatalf("unexpected verified rate: %f", summary.VerifiedRate)
	}
	if summary.ManualReviewRate != 0.4 {
		t.Fatalf("unexpected review rate: %f", summary.ManualReviewRate)
	}
	if summary.AverageConfidence != 0.66 {
		t.Fatalf("unexpected average confidence: %f", summary.AverageConfidence)
	}
}
