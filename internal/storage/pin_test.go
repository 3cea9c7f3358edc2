package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestUploadPinsFileAndReturnsHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("pinata_api_key") != "key" || r.Header.Get("pinata_secret_api_key") != "secret" {
			t.Errorf("missing auth headers")
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file part: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "proof.jpg" {
			t.Errorf("unexpected filename: %s", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "image-bytes" {
			t.Errorf("unexpected payload: %q", data)
		}
		_, _ = w.Write([]byte(`{"IpfsHash": "QmHash"}`))
	}))
	defer server.Close()

	client := NewPinClient(server.URL, "https://gateway.example", "key", "secret", zap.NewNop())

	hash, err := client.Upload(context.Background(), "proof.jpg", []byte("image-bytes"))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if hash != "QmHash" {
		t.Fatalf("unexpected hash: %s", hash)
	}
}

func TestUploadWrapsServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusPaymentRequired)
	}))
	defer server.Close()

	client := NewPinClient(server.URL, "https://gateway.example", "key", "secret", zap.NewNop())

	_, err := client.Upload(context.Background(), "proof.jpg", []byte("image"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected UploadError, got %T", err)
	}
	if uploadErr.Filename != "proof.jpg" {
		t.Fatalf("unexpected filename: %s", uploadErr.Filename)
	}
}

func TestUploadRejectsResponseWithoutHash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewPinClient(server.URL, "https://gateway.example", "key", "secret", zap.NewNop())

	if _, err := client.Upload(context.Background(), "proof.jpg", []byte("image")); err == nil {
		t.Fatal("expected error for missing content hash, got nil")
	}
}

func TestURLForJoinsGatewayAndHash(t *testing.T) {
	client := NewPinClient("https://pin.example", "https://gateway.example/", "", "", zap.NewNop())

	if got := client.URLFor("QmHash"); got != "https://gateway.example/ipfs/QmHash" {
		t.Fatalf("unexpected URL: %s", got)
	}
}
