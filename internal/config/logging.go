package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// SetupLogging configures the global zerolog level from LOG_LEVEL.
// Unknown or empty values default to info.
func SetupLogging() {
	level := strings.ToLower(GetEnvOrDefault("LOG_LEVEL", "info"))

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
