package services

import (
	"fmt"

	"github.com/YazanYahya/codex/internal/config"
	openaiinfra "github.com/YazanYahya/codex/internal/infrastructure/openai"
	redisinfra "github.com/YazanYahya/codex/internal/infrastructure/redis"
	"github.com/YazanYahya/codex/internal/services/completion"
	"github.com/YazanYahya/codex/internal/services/session"
	"github.com/YazanYahya/codex/internal/services/suggest"
	"github.com/rs/zerolog/log"
)

type Services struct {
	openAIService     *openaiinfra.Service
	redisService      *redisinfra.Service
	completionService *completion.Implementation
	suggestService    *suggest.Service
	historyService    *session.HistoryService
}

// InitializeServices initializes all required services
func InitializeServices() (*Services, error) {
	log.Info().Msg("Initializing core services")

	// Redis is optional; history falls back to memory without it
	redisService := redisinfra.NewService()

	// Completion endpoint client (required)
	openAIService := openaiinfra.NewService()
	if openAIService == nil {
		return nil, fmt.Errorf("completion endpoint client is required for core functionality")
	}

	completionService, err := completion.NewService(openAIService, config.GetCompletionTimeout())
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize completion service")
		return nil, fmt.Errorf("failed to initialize completion service: %w", err)
	}

	suggestService, err := suggest.NewService(completionService)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize suggestion service")
		return nil, fmt.Errorf("failed to initialize suggestion service: %w", err)
	}

	historyService := session.NewHistoryService(redisService)

	log.Info().Msg("All services initialized successfully")

	return &Services{
		openAIService:     openAIService,
		redisService:      redisService,
		completionService: completionService,
		suggestService:    suggestService,
		historyService:    historyService,
	}, nil
}

// Close releases service resources.
func (s *Services) Close() {
	s.suggestService.Close()
}

// GetCompletionService returns the remote completion client
func (s *Services) GetCompletionService() *completion.Implementation {
	return s.completionService
}

// GetSuggestService returns the inline suggestion pipeline
func (s *Services) GetSuggestService() *suggest.Service {
	return s.suggestService
}

// GetHistoryService returns the transcript history store
func (s *Services) GetHistoryService() *session.HistoryService {
	return s.historyService
}
