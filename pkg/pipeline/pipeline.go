// Package pipeline chains the three stages of the document pipeline:
// OCR extraction, text-to-XML structuring, and LLM paraphrasing.
//
// Each request is one independent pass through the stages; the pipeline
// holds no per-request state. The OCR dispatcher never fails (it degrades to
// mock output internally), structuring never fails, and paraphrase failures
// are caught here, logged, and replaced by the mock paraphraser. The only
// unsuccessful outcome a caller sees is OCR producing no text at all.
package pipeline

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/hdnguyen/ocrpipe/pkg/docxml"
	"github.com/hdnguyen/ocrpipe/pkg/ocr"
	"github.com/hdnguyen/ocrpipe/pkg/paraphrase"
	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// Options select providers and prompts for one request. Zero values mean
// configured defaults; UseMockLLM skips remote paraphrasing entirely.
type Options struct {
	OCRProvider string
	OCRPrompt   string
	LLMProvider string
	UseMockLLM  bool
}

// Result is the structured outcome handed back to the transport layer.
type Result struct {
	RawText        string `json:"raw_text"`
	RawXML         string `json:"raw_xml"`
	ParaphrasedXML string `json:"paraphrased_xml"`
	OCRProvider    string `json:"ocr_provider"`
	Success        bool   `json:"success"`
	Message        string `json:"message"`
}

// Pipeline wires the dispatchers together.
type Pipeline struct {
	ocr *ocr.Dispatcher
	llm *paraphrase.Dispatcher
	log *logrus.Logger
}

// New creates a pipeline from already-configured dispatchers.
func New(ocrDispatcher *ocr.Dispatcher, llmDispatcher *paraphrase.Dispatcher, log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Pipeline{ocr: ocrDispatcher, llm: llmDispatcher, log: log}
}

// Process runs the full image-to-paraphrased-XML pipeline.
func (p *Pipeline) Process(ctx context.Context, imageData []byte, opts Options) Result {
	extracted := p.ocr.Extract(ctx, imageData, opts.OCRProvider, opts.OCRPrompt)

	if extracted.Text == "" {
		return Result{
			OCRProvider: extracted.Provider,
			Success:     false,
			Message:     "No text detected in image",
		}
	}

	rawXML := docxml.TextToXML(extracted.Text)
	paraphrased := p.paraphrase(ctx, rawXML, opts)

	return Result{
		RawText:        extracted.Text,
		RawXML:         rawXML,
		ParaphrasedXML: paraphrased,
		OCRProvider:    extracted.Provider,
		Success:        true,
		Message:        "OCR pipeline completed successfully",
	}
}

// paraphrase applies the documented fail-open contract of the paraphrase
// dispatcher: remote failures are logged and replaced with the mock
// transform at this boundary.
func (p *Pipeline) paraphrase(ctx context.Context, rawXML string, opts Options) string {
	if opts.UseMockLLM {
		return paraphrase.MockParaphrase(rawXML)
	}

	out, err := p.llm.Paraphrase(ctx, rawXML, opts.LLMProvider)
	if err != nil {
		fields := logrus.Fields{"provider": opts.LLMProvider}
		if kind, ok := pipeerr.KindOf(err); ok {
			fields["kind"] = kind.String()
		}
		p.log.WithFields(fields).WithError(err).
			Warn("LLM paraphrase failed, falling back to mock paraphrase")
		return paraphrase.MockParaphrase(rawXML)
	}
	return out
}
