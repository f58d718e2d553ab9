package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

const (
	// DefaultReplicateBaseURL is the Replicate API root.
	DefaultReplicateBaseURL = "https://api.replicate.com"

	// DefaultReplicateModel is the hosted DeepSeek-OCR model, addressed as
	// owner/name for the models-predictions endpoint.
	DefaultReplicateModel = "lucataco/deepseek-ocr"
)

// ReplicateConfig configures the Replicate strategy.
type ReplicateConfig struct {
	// APIToken is the Replicate API token. Required.
	APIToken string
	// Model overrides the owner/name model path; empty means
	// DefaultReplicateModel.
	Model string
	// BaseURL overrides the API root; empty means DefaultReplicateBaseURL.
	BaseURL string
}

// ReplicateStrategy runs DeepSeek-OCR through the Replicate API using a
// blocking prediction (Prefer: wait), so a single request carries the whole
// exchange.
type ReplicateStrategy struct {
	cfg    ReplicateConfig
	client *http.Client
}

// NewReplicateStrategy creates the Replicate strategy.
func NewReplicateStrategy(cfg ReplicateConfig) *ReplicateStrategy {
	if cfg.Model == "" {
		cfg.Model = DefaultReplicateModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultReplicateBaseURL
	}
	return &ReplicateStrategy{
		cfg:    cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// Name implements Strategy.
func (s *ReplicateStrategy) Name() string { return "replicate" }

type replicatePrediction struct {
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error"`
}

// ExtractText implements Strategy.
func (s *ReplicateStrategy) ExtractText(ctx context.Context, png []byte, prompt string) (string, error) {
	if s.cfg.APIToken == "" {
		return "", pipeerr.New(pipeerr.Configuration, "REPLICATE_API_TOKEN not configured")
	}

	payload := map[string]any{
		"input": map[string]any{
			"image":  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
			"prompt": prompt,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.RemoteService, err, "failed to encode Replicate request")
	}

	url := fmt.Sprintf("%s/v1/models/%s/predictions", s.cfg.BaseURL, s.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.Configuration, err, "invalid Replicate endpoint")
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "wait")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", wrapTransportErr(err, "Replicate API")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.Transient, err, "failed to read Replicate response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", pipeerr.New(pipeerr.RemoteService, "Replicate API error: %s", string(raw))
	}

	var pred replicatePrediction
	if err := json.Unmarshal(raw, &pred); err != nil {
		return "", pipeerr.Wrap(pipeerr.RemoteService, err, "malformed Replicate response")
	}
	if pred.Status != "succeeded" {
		if pred.Error != "" {
			return "", pipeerr.New(pipeerr.RemoteService, "Replicate prediction %s: %s", pred.Status, pred.Error)
		}
		return "", pipeerr.New(pipeerr.RemoteService, "Replicate prediction finished with status %q", pred.Status)
	}
	return decodeReplicateOutput(pred.Output)
}

// decodeReplicateOutput accepts the two output shapes the model is known to
// produce: a single string, or a list of string chunks to concatenate.
func decodeReplicateOutput(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", pipeerr.New(pipeerr.RemoteService, "Replicate prediction has no output")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err == nil {
		return strings.Join(parts, ""), nil
	}
	return "", pipeerr.New(pipeerr.RemoteService, "unrecognized Replicate output shape: %s", string(raw))
}
