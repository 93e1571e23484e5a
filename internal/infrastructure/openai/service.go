package openai

import (
	"sync"

	"github.com/YazanYahya/codex/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// Service holds the shared client for the remote completion endpoint.
// Endpoint URL, API key and model are static configuration resolved at
// process start; there is no runtime reconfiguration.
type Service struct {
	mu     sync.RWMutex
	client *openai.Client
	model  string
}

func NewService() *Service {
	log.Info().Msg("Initialising completion endpoint client")
	key := config.GetAssistantAPIKey()

	if key == "" {
		log.Warn().Msg("Completion client not configured - ASSISTANT_API_KEY missing")
		return nil
	}

	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = config.GetAssistantEndpoint()

	return &Service{
		client: openai.NewClientWithConfig(cfg),
		model:  config.GetAssistantModel(),
	}
}

// NewServiceWithClient wires an already constructed client. Used by tests
// to point the pipeline at a local fake endpoint.
func NewServiceWithClient(client *openai.Client, model string) *Service {
	return &Service{client: client, model: model}
}

func (s *Service) GetClient() *openai.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

func (s *Service) GetModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}
