package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultModel is used when ASSISTANT_MODEL is not set.
	DefaultModel = "gpt-4o-mini"

	// DefaultEndpoint is the OpenAI-compatible chat completions base URL.
	DefaultEndpoint = "https://api.openai.com/v1"
)

// GetAssistantAPIKey returns the API key for the completion endpoint.
// The key is required for core functionality.
func GetAssistantAPIKey() string {
	value := GetEnvOrDefault("ASSISTANT_API_KEY", "")
	if value == "" {
		log.Warn().Msg("ASSISTANT_API_KEY environment variable not set")
	}
	return value
}

// GetAssistantEndpoint returns the base URL of the chat completion service.
// Any OpenAI-compatible endpoint satisfies the contract.
func GetAssistantEndpoint() string {
	return GetEnvOrDefault("ASSISTANT_ENDPOINT", DefaultEndpoint)
}

// GetAssistantModel returns the model identifier sent with every request.
func GetAssistantModel() string {
	return GetEnvOrDefault("ASSISTANT_MODEL", DefaultModel)
}

// GetCompletionTimeout returns the per-request deadline for remote calls.
func GetCompletionTimeout() time.Duration {
	seconds := parseEnvInt("COMPLETION_TIMEOUT_SECONDS", 30)
	return time.Duration(seconds) * time.Second
}
