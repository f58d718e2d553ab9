package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

func TestReplicateExtractText(t *testing.T) {
	var gotPath, gotPrefer, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPrefer = r.Header.Get("Prefer")
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "succeeded",
			"output": "Điều 1: Nội dung",
		})
	}))
	defer srv.Close()

	s := NewReplicateStrategy(ReplicateConfig{APIToken: "tok", BaseURL: srv.URL})
	text, err := s.ExtractText(context.Background(), []byte("png"), "Free OCR.")
	require.NoError(t, err)
	assert.Equal(t, "Điều 1: Nội dung", text)
	assert.Equal(t, "/v1/models/lucataco/deepseek-ocr/predictions", gotPath)
	assert.Equal(t, "wait", gotPrefer)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestReplicateChunkedOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "succeeded",
			"output": []string{"Điều 1: ", "Nội dung"},
		})
	}))
	defer srv.Close()

	s := NewReplicateStrategy(ReplicateConfig{APIToken: "tok", BaseURL: srv.URL})
	text, err := s.ExtractText(context.Background(), []byte("png"), "Free OCR.")
	require.NoError(t, err)
	assert.Equal(t, "Điều 1: Nội dung", text)
}

func TestReplicateMissingToken(t *testing.T) {
	s := NewReplicateStrategy(ReplicateConfig{})
	_, err := s.ExtractText(context.Background(), []byte("png"), "Free OCR.")
	assert.True(t, pipeerr.IsConfiguration(err), "got %v", err)
}

func TestReplicateFailedPrediction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "failed",
			"error":  "model exploded",
		})
	}))
	defer srv.Close()

	s := NewReplicateStrategy(ReplicateConfig{APIToken: "tok", BaseURL: srv.URL})
	_, err := s.ExtractText(context.Background(), []byte("png"), "Free OCR.")
	require.Error(t, err)
	assert.True(t, pipeerr.IsRemoteService(err), "got %v", err)
	assert.Contains(t, err.Error(), "model exploded")
}

func TestReplicateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	s := NewReplicateStrategy(ReplicateConfig{APIToken: "tok", BaseURL: srv.URL})
	_, err := s.ExtractText(context.Background(), []byte("png"), "Free OCR.")
	assert.True(t, pipeerr.IsRemoteService(err), "got %v", err)
}
