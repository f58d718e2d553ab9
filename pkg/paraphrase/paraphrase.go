// Package paraphrase rewrites the natural-language content of a structured
// XML document with an LLM while preserving the markup.
//
// Like the OCR side, providers are interchangeable strategies behind a small
// registry ("openai" and "anthropic" by default), but the failure handling is
// deliberately the opposite: this dispatcher does not absorb errors. Unknown
// providers, missing credentials and remote failures all propagate to the
// caller, and the orchestration boundary decides whether to substitute
// MockParaphrase. OCR fails closed inside its dispatcher; paraphrasing fails
// open to the caller.
package paraphrase

import (
	"context"
	"errors"
	"net"
	"net/url"
	"sort"
	"strings"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// Strategy is one paraphrase backend. It receives the fully built
// instruction prompt and returns the model's raw text output.
type Strategy interface {
	Name() string
	Paraphrase(ctx context.Context, prompt string) (string, error)
}

// Config selects the default provider and carries provider credentials.
type Config struct {
	// DefaultProvider is used when a request names no provider.
	DefaultProvider string
	// Model is the OpenAI chat model identifier.
	Model string

	OpenAIAPIKey    string
	AnthropicAPIKey string
}

// Dispatcher routes paraphrase requests to registered strategies.
type Dispatcher struct {
	strategies      map[string]Strategy
	defaultProvider string
}

// NewDispatcher builds a dispatcher with the "openai" and "anthropic"
// strategies registered.
func NewDispatcher(cfg Config) *Dispatcher {
	d := &Dispatcher{
		strategies:      make(map[string]Strategy),
		defaultProvider: cfg.DefaultProvider,
	}
	d.Register(NewOpenAIStrategy(cfg.OpenAIAPIKey, cfg.Model))
	d.Register(NewAnthropicStrategy(cfg.AnthropicAPIKey))
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

// Paraphrase rewrites the text content of xmlContent using the requested
// provider, or the configured default when provider is empty. Errors are
// returned to the caller unhandled.
func (d *Dispatcher) Paraphrase(ctx context.Context, xmlContent, provider string) (string, error) {
	if provider == "" {
		provider = d.defaultProvider
	}
	strategy, ok := d.strategies[provider]
	if !ok {
		return "", pipeerr.New(pipeerr.Configuration,
			"unknown LLM provider %q (allowed: %s)",
			provider, strings.Join(d.Providers(), ", "))
	}
	return strategy.Paraphrase(ctx, BuildPrompt(xmlContent))
}

// wrapLLMErr tags a strategy failure: transport-level causes are transient,
// anything the service answered with is a remote-service failure.
func wrapLLMErr(err error, what string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return pipeerr.Wrap(pipeerr.Transient, err, "%s unreachable", what)
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return pipeerr.Wrap(pipeerr.Transient, err, "%s unreachable", what)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return pipeerr.Wrap(pipeerr.Transient, err, "%s unreachable", what)
	}
	return pipeerr.Wrap(pipeerr.RemoteService, err, "%s request failed", what)
}
