package completion

import (
	"context"

	"github.com/YazanYahya/codex/internal/services/prompt"
)

// Service defines the interface for the remote completion round trip.
type Service interface {
	// Send performs a single chat-completion request for the given
	// system/user pair and returns the normalized response text.
	// There are no retries; every failure is terminal for the exchange.
	Send(ctx context.Context, pair prompt.Pair) (string, error)
}
