package ocr

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// Dispatcher routes extraction requests to registered strategies and absorbs
// their failures.
type Dispatcher struct {
	strategies      map[string]Strategy
	defaultProvider string
	mock            *MockStrategy
	log             *logrus.Logger
}

// NewDispatcher builds a dispatcher with the standard provider registry:
// "replicate", "clarifai", "gdocai", "tesseract" and "mock". Additional
// strategies can be added with Register.
func NewDispatcher(cfg Config, log *logrus.Logger) *Dispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	d := &Dispatcher{
		strategies:      make(map[string]Strategy),
		defaultProvider: cfg.DefaultProvider,
		mock:            NewMockStrategy(),
		log:             log,
	}
	d.Register(NewReplicateStrategy(cfg.Replicate))
	d.Register(NewClarifaiStrategy(cfg.Clarifai))
	d.Register(NewGDocAIStrategy(cfg.GDocAI))
	d.Register(NewTesseractStrategy(cfg.Tesseract))
	d.Register(d.mock)
	return d
}

// Register adds a strategy under its own name, replacing any previous entry.
func (d *Dispatcher) Register(s Strategy) {
	d.strategies[s.Name()] = s
}

// Providers returns the registered provider identifiers, sorted.
func (d *Dispatcher) Providers() []string {
	names := make([]string, 0, len(d.strategies))
	for name := range d.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extract runs OCR on raw image bytes with the requested provider, or the
// configured default when provider is empty. It never fails: any error from
// image normalization or from the chosen strategy is logged and replaced by
// the mock text under the "mock (fallback)" label.
func (d *Dispatcher) Extract(ctx context.Context, imageData []byte, provider, prompt string) Result {
	if provider == "" {
		provider = d.defaultProvider
	}
	if prompt == "" {
		prompt = DefaultPrompt
	}

	png, err := NormalizeImage(imageData)
	if err != nil {
		return d.fallback(provider, err)
	}

	strategy, ok := d.strategies[provider]
	if !ok {
		return d.fallback(provider, pipeerr.New(pipeerr.Configuration,
			"unknown OCR provider %q (allowed: %s)",
			provider, strings.Join(d.Providers(), ", ")))
	}

	text, err := strategy.ExtractText(ctx, png, prompt)
	if err != nil {
		return d.fallback(provider, err)
	}
	return Result{Text: text, Provider: provider}
}

func (d *Dispatcher) fallback(provider string, cause error) Result {
	fields := logrus.Fields{"provider": provider}
	if kind, ok := pipeerr.KindOf(cause); ok {
		fields["kind"] = kind.String()
	}
	d.log.WithFields(fields).WithError(cause).
		Warn("OCR failed, falling back to mock output")

	text, _ := d.mock.ExtractText(context.Background(), nil, "")
	return Result{Text: text, Provider: FallbackLabel}
}
