// Package assistant contains the Gemini-backed implementation of the AI
// assistant collaborator.
package assistant

import (
	"context"

	"cargofly/internal/domain/service"
	"cargofly/internal/errors"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

type geminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService creates an assistant backed by the Gemini API. An empty
// apiKey falls back to the GEMINI_API_KEY environment variable handled by the
// client itself.
func NewGeminiService(ctx context.Context, apiKey, model string) (service.AssistantService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	if model == "" {
		model = defaultModel
	}

	return &geminiService{
		client: client,
		model:  model,
	}, nil
}

// Ask sends a single prompt and returns the generated text.
func (s *geminiService) Ask(ctx context.Context, prompt string) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate content")
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("empty model response")
	}

	return text, nil
}
