//go:build !ocr

package ocr

import (
	"context"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// TesseractStrategy is the stub used when the "ocr" build tag is not set.
// It keeps "tesseract" registered so requesting it degrades through the
// normal fallback path instead of being an unknown provider.
//
// To enable real Tesseract support, install the Tesseract libraries and
// rebuild with -tags ocr.
type TesseractStrategy struct {
	cfg TesseractConfig
}

// NewTesseractStrategy creates the stub strategy.
func NewTesseractStrategy(cfg TesseractConfig) *TesseractStrategy {
	if cfg.Language == "" {
		cfg.Language = DefaultTesseractLanguage
	}
	return &TesseractStrategy{cfg: cfg}
}

// Name implements Strategy.
func (s *TesseractStrategy) Name() string { return "tesseract" }

// ExtractText implements Strategy. It always fails with a configuration
// error, which the dispatcher converts into the mock fallback.
func (s *TesseractStrategy) ExtractText(_ context.Context, _ []byte, _ string) (string, error) {
	return "", pipeerr.New(pipeerr.Configuration,
		"tesseract support not compiled in; rebuild with -tags ocr")
}

// Close is a no-op on the stub.
func (s *TesseractStrategy) Close() error { return nil }
