package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSchemaMismatch indicates a ledger record whose shape this client does
// not understand. Decoding fails loudly instead of guessing at positional
// fields; schema drift must surface as an incident, not a misread payout.
var ErrSchemaMismatch = errors.New("ledger record schema mismatch")

// submissionSchemaVersion is the single record version this client decodes.
const submissionSchemaVersion = 1

// SubmissionRecord is the ledger's view of one proof submission.
type SubmissionRecord struct {
	SchemaVersion       int              `json:"schema_version"`
	SubmissionID        string           `json:"submission_id"`
	OpportunityID       string           `json:"opportunity_id"`
	Claimant            string           `json:"claimant"`
	ContentHash         string           `json:"content_hash"`
	LatitudeMicro       int64            `json:"latitude_micro"`
	LongitudeMicro      int64            `json:"longitude_micro"`
	SubmittedAtUnix     int64            `json:"submitted_at"`
	Status              SubmissionStatus `json:"status"`
	AIVerified          bool             `json:"ai_verified"`
	AIConfidencePercent int              `json:"ai_confidence_percent"`
	NeedsManualReview   bool             `json:"needs_manual_review"`
}

// DecodeOpportunity decodes a ledger opportunity record, enforcing the
// tagged schema version and the presence of the identifying fields.
func DecodeOpportunity(data []byte) (*OpportunityRecord, error) {
	var record OpportunityRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if record.SchemaVersion != submissionSchemaVersion {
		return nil, fmt.Errorf("%w: unsupported schema_version %d", ErrSchemaMismatch, record.SchemaVersion)
	}
	if record.OpportunityID == "" {
		return nil, fmt.Errorf("%w: missing opportunity_id", ErrSchemaMismatch)
	}
	if record.RadiusMeters < 0 {
		return nil, fmt.Errorf("%w: negative radius %v", ErrSchemaMismatch, record.RadiusMeters)
	}
	return &record, nil
}

// DecodeSubmission decodes a ledger submission record, enforcing the tagged
// schema version and the presence of the identifying fields.
func DecodeSubmission(data []byte) (*SubmissionRecord, error) {
	var record SubmissionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if record.SchemaVersion != submissionSchemaVersion {
		return nil, fmt.Errorf("%w: unsupported schema_version %d", ErrSchemaMismatch, record.SchemaVersion)
	}
	if record.SubmissionID == "" || record.OpportunityID == "" {
		return nil, fmt.Errorf("%w: missing submission identifiers", ErrSchemaMismatch)
	}
	if record.Status < StatusPending || record.Status > StatusRejected {
		return nil, fmt.Errorf("%w: unknown status %d", ErrSchemaMismatch, record.Status)
	}
	return &record, nil
}
