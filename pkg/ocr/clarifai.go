package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// DefaultClarifaiBaseURL is the Clarifai model-outputs endpoint for the
// hosted DeepSeek-OCR model.
const DefaultClarifaiBaseURL = "https://api.clarifai.com/v2/users/deepseek-ai/apps/deepseek-ocr/models/DeepSeek-OCR/versions/1/outputs"

// ClarifaiConfig configures the Clarifai strategy.
type ClarifaiConfig struct {
	// PAT is the Clarifai personal access token. Required.
	PAT string
	// BaseURL overrides the model-outputs endpoint; empty means
	// DefaultClarifaiBaseURL.
	BaseURL string
}

// ClarifaiStrategy runs DeepSeek-OCR through the Clarifai API.
type ClarifaiStrategy struct {
	cfg    ClarifaiConfig
	client *http.Client
}

// NewClarifaiStrategy creates the Clarifai strategy.
func NewClarifaiStrategy(cfg ClarifaiConfig) *ClarifaiStrategy {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultClarifaiBaseURL
	}
	return &ClarifaiStrategy{
		cfg:    cfg,
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

// Name implements Strategy.
func (s *ClarifaiStrategy) Name() string { return "clarifai" }

type clarifaiRequest struct {
	Inputs []clarifaiInput `json:"inputs"`
}

type clarifaiInput struct {
	Data clarifaiData `json:"data"`
}

type clarifaiData struct {
	Image *clarifaiImage `json:"image,omitempty"`
	Text  *clarifaiText  `json:"text,omitempty"`
}

type clarifaiImage struct {
	Base64 string `json:"base64"`
}

type clarifaiText struct {
	Raw string `json:"raw"`
}

type clarifaiResponse struct {
	Outputs []struct {
		Data clarifaiData `json:"data"`
	} `json:"outputs"`
}

// ExtractText implements Strategy.
func (s *ClarifaiStrategy) ExtractText(ctx context.Context, png []byte, prompt string) (string, error) {
	if s.cfg.PAT == "" {
		return "", pipeerr.New(pipeerr.Configuration, "CLARIFAI_PAT not configured")
	}

	payload := clarifaiRequest{
		Inputs: []clarifaiInput{{
			Data: clarifaiData{
				Image: &clarifaiImage{Base64: base64.StdEncoding.EncodeToString(png)},
				Text:  &clarifaiText{Raw: prompt},
			},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.RemoteService, err, "failed to encode Clarifai request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.Configuration, err, "invalid Clarifai endpoint")
	}
	req.Header.Set("Authorization", "Key "+s.cfg.PAT)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", wrapTransportErr(err, "Clarifai API")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.Transient, err, "failed to read Clarifai response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", pipeerr.New(pipeerr.RemoteService, "Clarifai API error: %s", string(raw))
	}

	var parsed clarifaiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", pipeerr.Wrap(pipeerr.RemoteService, err, "malformed Clarifai response")
	}
	if len(parsed.Outputs) == 0 || parsed.Outputs[0].Data.Text == nil {
		return "", pipeerr.New(pipeerr.RemoteService, "Clarifai response contains no text output")
	}
	return parsed.Outputs[0].Data.Text.Raw, nil
}
