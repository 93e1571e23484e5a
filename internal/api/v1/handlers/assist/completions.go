package assist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/YazanYahya/codex/internal/services/completion"
	"github.com/YazanYahya/codex/internal/services/suggest"
	"github.com/YazanYahya/codex/pkg/httpext"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// CompletionRequest carries the text preceding the cursor. Only the
// trailing window of the prefix is used; see the suggestion service.
type CompletionRequest struct {
	Prefix   string `json:"prefix" validate:"required"`
	Language string `json:"language"`
}

type CompletionResponse struct {
	Candidates []suggest.Candidate `json:"candidates"`
}

// HandleCompletionSuggestions serves inline completion candidates for
// the editor's completion provider.
func HandleCompletionSuggestions(suggestService *suggest.Service, w http.ResponseWriter, r *http.Request) {
	var req CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Request validation failed")
		httpext.JsonError(w, "Invalid request: prefix is required", http.StatusBadRequest)
		return
	}

	if req.Language == "" {
		req.Language = "JavaScript"
	}

	candidates, err := suggestService.Suggest(r.Context(), req.Prefix, req.Language)
	if err != nil {
		status := http.StatusBadGateway
		var te *completion.TransportError
		if !errors.As(err, &te) {
			var ne *completion.NetworkError
			if !errors.As(err, &ne) {
				status = http.StatusInternalServerError
			}
		}
		log.Error().Err(err).Msg("Failed to produce completion suggestions")
		httpext.JsonError(w, "Completion request failed", status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(CompletionResponse{Candidates: candidates}); err != nil {
		log.Error().Err(err).Msg("Failed to encode completion response")
	}
}
