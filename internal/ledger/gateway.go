package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Gateway submits proof records to the ledger over its HTTP JSON API.
type Gateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewGateway constructs a gateway against the given base URL.
func NewGateway(baseURL string, logger *zap.Logger) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger.Named("ledger_gateway"),
	}
}

type submitResponse struct {
	SubmissionID string `json:"submission_id"`
}

// GetOpportunity fetches and decodes the opportunity that owns a geofence.
func (g *Gateway) GetOpportunity(ctx context.Context, opportunityID string) (*OpportunityRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/opportunities/"+opportunityID, nil)
	if err != nil {
		return nil, &Error{Op: "get_opportunity", Err: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("ledger request failed", zap.Error(err))
		return nil, &Error{Op: "get_opportunity", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &Error{Op: "get_opportunity", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Op: "get_opportunity", Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	record, err := DecodeOpportunity(body)
	if err != nil {
		return nil, &Error{Op: "get_opportunity", Err: err}
	}
	return record, nil
}

// SubmitProof posts the record and returns the ledger submission id.
func (g *Gateway) SubmitProof(ctx context.Context, record ProofRecord) (string, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return "", &Error{Op: "submit_proof", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/submissions", bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Op: "submit_proof", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("ledger request failed", zap.Error(err))
		return "", &Error{Op: "submit_proof", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &Error{Op: "submit_proof", Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Error("ledger rejected submission",
			zap.Int("status", resp.StatusCode),
			zap.String("opportunity_id", record.OpportunityID))
		return "", &Error{Op: "submit_proof", Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	var decoded submitResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", &Error{Op: "submit_proof", Err: err}
	}
	if decoded.SubmissionID == "" {
		return "", &Error{Op: "submit_proof", Err: fmt.Errorf("response missing submission_id")}
	}
	return decoded.SubmissionID, nil
}
