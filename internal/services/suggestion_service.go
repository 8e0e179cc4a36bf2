package services

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// SuggestionService derives a task title from a free-form description. With
// an API key configured it asks the model first; without one, or when the
// API call fails, it falls back to a plain truncation of the description.
type SuggestionService struct {
	client *openai.Client
}

// NewSuggestionService creates a SuggestionService. An empty API key yields
// a service that only uses the local fallback.
func NewSuggestionService(apiKey string) *SuggestionService {
	s := &SuggestionService{}
	if apiKey != "" {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// SuggestTitle returns a short title for the given description.
func (s *SuggestionService) SuggestTitle(ctx context.Context, description string) string {
	if s.client != nil {
		if title, err := s.suggestWithModel(ctx, description); err == nil && title != "" {
			return title
		}
	}
	return TruncateTitle(description)
}

func (s *SuggestionService) suggestWithModel(ctx context.Context, description string) (string, error) {
	prompt := "Suggest a short task title (at most six words, no quotes) for this description:\n\n" + description

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// TruncateTitle reduces a description to its first six words, marking
// truncation with an ellipsis. Blank input yields a generic title.
func TruncateTitle(description string) string {
	cleaned := strings.TrimSpace(description)
	if cleaned == "" {
		return "New Task"
	}

	fields := strings.Fields(cleaned)
	if len(fields) > 6 {
		fields = fields[:6]
	}

	title := strings.Join(fields, " ")
	if len(title) < len(cleaned) {
		return title + "..."
	}
	return title
}
