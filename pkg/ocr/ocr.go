// Package ocr extracts text from images through a registry of interchangeable
// provider strategies.
//
// A Strategy wraps one external OCR backend (Replicate, Clarifai, Google
// Document AI, a local Tesseract install) or the deterministic mock. The
// Dispatcher owns the registry: it normalizes the incoming image to a
// canonical PNG encoding, looks up the requested strategy, and invokes it
// with a single attempt and no retry.
//
// Failure handling is deliberately one-sided. OCR backends are external,
// rate-limited and credential-gated, and this pipeline prioritizes always
// returning something renderable over surfacing upstream errors. Any
// strategy failure, including an unknown provider identifier, is logged and
// absorbed: the dispatcher substitutes the mock text and labels the result
// "mock (fallback)" so callers can still tell it apart from a genuine mock
// request. Extract never returns an error.
package ocr

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// DefaultPrompt is sent to prompt-driven OCR backends when the caller does
// not supply one.
const DefaultPrompt = "Free OCR."

// FallbackLabel marks results produced by the mock after a strategy failure,
// distinguishable from a directly requested "mock" provider.
const FallbackLabel = "mock (fallback)"

// Strategy is one OCR backend. ExtractText receives the image as normalized
// PNG bytes and an optional prompt; backends that are not prompt-driven
// ignore the prompt.
type Strategy interface {
	Name() string
	ExtractText(ctx context.Context, png []byte, prompt string) (string, error)
}

// Result is the outcome of a dispatch. Provider always reflects the strategy
// that actually produced Text.
type Result struct {
	Text     string
	Provider string
}

// Config selects the default provider and carries per-provider settings.
type Config struct {
	// DefaultProvider is used when a request names no provider.
	DefaultProvider string

	Replicate ReplicateConfig
	Clarifai  ClarifaiConfig
	GDocAI    GDocAIConfig
	Tesseract TesseractConfig
}

// transientCause reports whether err looks like a transport-level failure
// (timeout, refused connection, cancelled context) rather than a response
// from the service itself.
func transientCause(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue)
}

// wrapTransportErr tags an outbound-call failure with the right error kind.
func wrapTransportErr(err error, what string) error {
	if transientCause(err) {
		return pipeerr.Wrap(pipeerr.Transient, err, "%s unreachable", what)
	}
	return pipeerr.Wrap(pipeerr.RemoteService, err, "%s request failed", what)
}
