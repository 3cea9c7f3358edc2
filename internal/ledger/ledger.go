// Package ledger is the boundary to the external ledger that records
// opportunities, submissions, and payouts. The core only packages verdicts
// into proof records and decodes submission records; the ledger's own state
// machine is the final arbiter of Pending/Approved/Rejected.
package ledger

import (
	"context"
	"fmt"
)

// SubmissionStatus mirrors the ledger's submission state machine.
type SubmissionStatus int

const (
	StatusPending SubmissionStatus = iota
	StatusApproved
	StatusRejected
)

func (s SubmissionStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ProofRecord is the packaged submission the ledger consumes. Coordinates
// are degrees scaled by 1e6 truncated toward zero; confidence is an integer
// percentage floored from the blended [0,1] score. The three verdict fields
// are forwarded independently.
type ProofRecord struct {
	OpportunityID       string `json:"opportunity_id"`
	ContentHash         string `json:"content_hash"`
	LatitudeMicro       int64  `json:"latitude_micro"`
	LongitudeMicro      int64  `json:"longitude_micro"`
	AIVerified          bool   `json:"ai_verified"`
	AIConfidencePercent int    `json:"ai_confidence_percent"`
	NeedsManualReview   bool   `json:"needs_manual_review"`
}

// OpportunityRecord is the ledger's view of one location-bound task. The
// geofence it carries is read-only to the verification core.
type OpportunityRecord struct {
	SchemaVersion  int    `json:"schema_version"`
	OpportunityID  string `json:"opportunity_id"`
	Category       string `json:"category"`
	Title          string `json:"title"`
	LatitudeMicro  int64  `json:"latitude_micro"`
	LongitudeMicro int64  `json:"longitude_micro"`
	RadiusMeters   float64 `json:"radius_meters"`
	RewardAmount   string `json:"reward_amount"`
	Active         bool   `json:"active"`
}

// Ledger is the boundary used by the submission flow: look up the
// opportunity that owns the geofence, then sink the packaged proof record.
type Ledger interface {
	GetOpportunity(ctx context.Context, opportunityID string) (*OpportunityRecord, error)
	SubmitProof(ctx context.Context, record ProofRecord) (submissionID string, err error)
}

// Error indicates a ledger transaction failed. It is never swallowed by the
// verification core.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("ledger %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }
