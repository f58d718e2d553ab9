//go:build ocr

package ocr

import (
	"context"
	"sync"

	"github.com/otiai10/gosseract/v2"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// TesseractStrategy runs OCR with a local Tesseract install via gosseract.
// Requires the "ocr" build tag and the Tesseract libraries on the system.
//
// A gosseract client is not safe for concurrent use, so the strategy creates
// one lazily and serializes extraction through a mutex.
type TesseractStrategy struct {
	cfg TesseractConfig

	mu     sync.Mutex
	client *gosseract.Client
}

// NewTesseractStrategy creates the Tesseract strategy.
func NewTesseractStrategy(cfg TesseractConfig) *TesseractStrategy {
	if cfg.Language == "" {
		cfg.Language = DefaultTesseractLanguage
	}
	return &TesseractStrategy{cfg: cfg}
}

// Name implements Strategy.
func (s *TesseractStrategy) Name() string { return "tesseract" }

// ExtractText implements Strategy. The prompt is ignored; Tesseract is
// configured by language, not prompt.
func (s *TesseractStrategy) ExtractText(_ context.Context, png []byte, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		client := gosseract.NewClient()
		if err := client.SetLanguage(s.cfg.Language); err != nil {
			client.Close()
			return "", pipeerr.Wrap(pipeerr.Configuration, err,
				"tesseract language %q unavailable", s.cfg.Language)
		}
		s.client = client
	}

	if err := s.client.SetImageFromBytes(png); err != nil {
		return "", pipeerr.Wrap(pipeerr.RemoteService, err, "failed to set tesseract image")
	}
	text, err := s.client.Text()
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.RemoteService, err, "tesseract recognition failed")
	}
	return text, nil
}

// Close releases the underlying Tesseract resources.
func (s *TesseractStrategy) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}
