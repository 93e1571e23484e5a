package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/YazanYahya/codex/internal/services/completion"
	"github.com/YazanYahya/codex/internal/services/prompt"
	"github.com/rs/zerolog/log"
)

// Candidate is one inline completion suggestion in the shape the
// editor's completion menu consumes.
type Candidate struct {
	Label      string `json:"label"`
	InsertText string `json:"insert_text"`
}

type Service struct {
	completionService completion.Service
	cache             *Cache
}

func NewService(completionService completion.Service) (*Service, error) {
	if completionService == nil {
		return nil, fmt.Errorf("completion service is required")
	}

	return &Service{
		completionService: completionService,
		cache:             NewCache(),
	}, nil
}

// Close releases cache resources.
func (s *Service) Close() {
	s.cache.Close()
}

// Suggest returns ordered completion candidates for the text preceding
// the cursor. The trailing window of the text is both the cache key and
// the model input; a hit short-circuits the remote call entirely.
// Parser failures degrade to zero candidates; only transport-level
// failures surface to the caller.
func (s *Service) Suggest(ctx context.Context, precedingText, language string) ([]Candidate, error) {
	key := TruncateContext(precedingText)

	if suggestions, ok := s.cache.Lookup(key); ok {
		log.Debug().Int("count", len(suggestions)).Msg("Completion cache hit")
		return toCandidates(suggestions), nil
	}

	pair := prompt.ForCompletion(key, language)
	raw, err := s.completionService.Send(ctx, pair)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch completion suggestions: %w", err)
	}

	suggestions := ParseCandidates(raw)
	s.cache.Store(key, suggestions)
	log.Debug().Int("count", len(suggestions)).Msg("Completion suggestions stored")

	return toCandidates(suggestions), nil
}

func toCandidates(suggestions []string) []Candidate {
	candidates := make([]Candidate, 0, len(suggestions))
	for _, suggestion := range suggestions {
		candidates = append(candidates, Candidate{
			Label:      strings.TrimSpace(suggestion),
			InsertText: suggestion,
		})
	}
	return candidates
}
