package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	openaiinfra "github.com/YazanYahya/codex/internal/infrastructure/openai"
	"github.com/YazanYahya/codex/internal/services/prompt"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

type Implementation struct {
	openAIService *openaiinfra.Service
	timeout       time.Duration
}

func NewService(openAIService *openaiinfra.Service, timeout time.Duration) (*Implementation, error) {
	if openAIService == nil {
		return nil, fmt.Errorf("completion endpoint client is required")
	}

	return &Implementation{
		openAIService: openAIService,
		timeout:       timeout,
	}, nil
}

// Send performs exactly one round trip: a two-message (system, user)
// exchange against the configured model. The call runs under a deadline
// derived from ctx, so a caller cancelling a superseded exchange aborts
// the in-flight request.
func (s *Implementation) Send(ctx context.Context, pair prompt.Pair) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: s.openAIService.GetModel(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: pair.System},
			{Role: openai.ChatMessageRoleUser, Content: pair.User},
		},
	}

	resp, err := s.openAIService.GetClient().CreateChatCompletion(ctx, req)
	if err != nil {
		classified := classify(err)
		log.Error().Err(classified).Msg("Chat completion request failed")
		return "", classified
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Warn().Msg("Completion response carried no content, using fallback text")
		return EmptyContentFallback, nil
	}

	return resp.Choices[0].Message.Content, nil
}

// classify maps client errors onto the transport/network taxonomy.
// API-level failures carry an HTTP status; everything else is treated
// as a network-level failure and propagated unchanged underneath.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &TransportError{
			StatusCode: apiErr.HTTPStatusCode,
			Status:     apiErr.Message,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &TransportError{
			StatusCode: reqErr.HTTPStatusCode,
			Status:     reqErr.Error(),
		}
	}

	return &NetworkError{Err: err}
}
