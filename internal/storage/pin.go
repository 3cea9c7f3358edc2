package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PinClient uploads files to an IPFS pinning service and returns the
// resulting content hash.
type PinClient struct {
	pinURL     string
	gatewayURL string
	apiKey     string
	apiSecret  string
	client     *http.Client
	logger     *zap.Logger
}

// NewPinClient constructs a client for a pinning API. gatewayURL is the
// public gateway used to resolve content hashes to fetchable URLs.
func NewPinClient(pinURL, gatewayURL, apiKey, apiSecret string, logger *zap.Logger) *PinClient {
	return &PinClient{
		pinURL:     pinURL,
		gatewayURL: strings.TrimRight(gatewayURL, "/"),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		client:     &http.Client{Timeout: 60 * time.Second},
		logger:     logger.Named("content_store"),
	}
}

type pinResponse struct {
	Hash string `json:"IpfsHash"`
}

// Upload pins the file and returns its content hash.
func (p *PinClient) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", &UploadError{Filename: filename, Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return "", &UploadError{Filename: filename, Err: err}
	}
	if err := writer.Close(); err != nil {
		return "", &UploadError{Filename: filename, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.pinURL, body)
	if err != nil {
		return "", &UploadError{Filename: filename, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("pinata_api_key", p.apiKey)
	req.Header.Set("pinata_secret_api_key", p.apiSecret)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("pin request failed", zap.Error(err))
		return "", &UploadError{Filename: filename, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &UploadError{Filename: filename, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("status %d: %s", resp.StatusCode, respBody)}
	}

	var decoded pinResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", &UploadError{Filename: filename, Err: err}
	}
	if decoded.Hash == "" {
		return "", &UploadError{Filename: filename, Err: fmt.Errorf("response missing content hash")}
	}
	return decoded.Hash, nil
}

// URLFor resolves a content hash through the public gateway.
func (p *PinClient) URLFor(contentHash string) string {
	return p.gatewayURL + "/ipfs/" + contentHash
}
