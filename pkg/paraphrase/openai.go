package paraphrase

import (
	"context"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"

	"github.com/hdnguyen/ocrpipe/pkg/pipeerr"
)

// openAITemperature matches the reference paraphrase settings.
const openAITemperature = 0.7

// OpenAIStrategy paraphrases through the OpenAI chat completions API.
type OpenAIStrategy struct {
	apiKey string
	model  string
}

// NewOpenAIStrategy creates the OpenAI strategy with the given chat model.
func NewOpenAIStrategy(apiKey, model string) *OpenAIStrategy {
	return &OpenAIStrategy{apiKey: apiKey, model: model}
}

// Name implements Strategy.
func (s *OpenAIStrategy) Name() string { return "openai" }

// Paraphrase implements Strategy.
func (s *OpenAIStrategy) Paraphrase(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", pipeerr.New(pipeerr.Configuration, "OPENAI_API_KEY not configured")
	}

	client := openai.NewClient(option.WithAPIKey(s.apiKey))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(s.model),
		Temperature: openai.Float(openAITemperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", wrapLLMErr(err, "OpenAI API")
	}
	if len(resp.Choices) == 0 {
		return "", pipeerr.New(pipeerr.RemoteService, "OpenAI completion contains no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
