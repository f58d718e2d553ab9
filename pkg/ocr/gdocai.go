package ocr

import (
	"context"
	"fmt"
	"os"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// GDocAIConfig identifies the Document AI processor to run OCR with.
// Authentication uses the GOOGLE_APPLICATION_CREDENTIALS environment
// variable, as is conventional for Google Cloud clients.
type GDocAIConfig struct {
	ProjectID   string
	Location    string
	ProcessorID string
}

// GDocAIStrategy runs OCR through a Google Document AI processor.
// The prompt is ignored; Document AI processors are not prompt-driven.
type GDocAIStrategy struct {
	cfg GDocAIConfig
}

// NewGDocAIStrategy creates the Document AI strategy.
func NewGDocAIStrategy(cfg GDocAIConfig) *GDocAIStrategy {
	return &GDocAIStrategy{cfg: cfg}
}

// Name implements Strategy.
func (s *GDocAIStrategy) Name() string { return "gdocai" }

// ExtractText implements Strategy.
func (s *GDocAIStrategy) ExtractText(ctx context.Context, png []byte, _ string) (string, error) {
	if s.cfg.ProjectID == "" || s.cfg.Location == "" || s.cfg.ProcessorID == "" {
		return "", pipeerr.New(pipeerr.Configuration,
			"Document AI project, location and processor must all be configured")
	}
	creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if creds == "" {
		return "", pipeerr.New(pipeerr.Configuration,
			"GOOGLE_APPLICATION_CREDENTIALS not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", s.cfg.Location)
	client, err := documentai.NewDocumentProcessorClient(
		ctx,
		option.WithEndpoint(endpoint),
		option.WithCredentialsFile(creds),
	)
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.Transient, err, "failed to create Document AI client")
	}
	defer client.Close()

	name := fmt.Sprintf(
		"projects/%s/locations/%s/processors/%s",
		s.cfg.ProjectID, s.cfg.Location, s.cfg.ProcessorID,
	)
	req := &documentaipb.ProcessRequest{
		Name: name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  png,
				MimeType: "image/png",
			},
		},
		SkipHumanReview: true,
	}

	resp, err := client.ProcessDocument(ctx, req)
	if err != nil {
		return "", pipeerr.Wrap(pipeerr.RemoteService, err, "Document AI processing failed")
	}
	return resp.GetDocument().GetText(), nil
}
