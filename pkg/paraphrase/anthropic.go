package paraphrase

import (
	"context"

	anthropicSDK "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

const (
	anthropicModel     = "claude-3-haiku-20240307"
	anthropicMaxTokens = 4096
)

// AnthropicStrategy paraphrases through the Anthropic messages API.
type AnthropicStrategy struct {
	apiKey string
}

// NewAnthropicStrategy creates the Anthropic strategy.
func NewAnthropicStrategy(apiKey string) *AnthropicStrategy {
	return &AnthropicStrategy{apiKey: apiKey}
}

// Name implements Strategy.
func (s *AnthropicStrategy) Name() string { return "anthropic" }

// Paraphrase implements Strategy.
func (s *AnthropicStrategy) Paraphrase(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", pipeerr.New(pipeerr.Configuration, "ANTHROPIC_API_KEY not configured")
	}

	client := anthropicSDK.NewClient(option.WithAPIKey(s.apiKey))
	message, err := client.Messages.New(ctx, anthropicSDK.MessageNewParams{
		Model:     anthropicModel,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropicSDK.MessageParam{
			{
				Role: anthropicSDK.MessageParamRoleUser,
				Content: []anthropicSDK.ContentBlockParamUnion{
					anthropicSDK.NewTextBlock(prompt),
				},
			},
		},
	})
	if err != nil {
		return "", wrapLLMErr(err, "Anthropic API")
	}

	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropicSDK.TextBlock); ok {
			return text.Text, nil
		}
	}
	return "", pipeerr.New(pipeerr.RemoteService, "Anthropic response contains no text block")
}
