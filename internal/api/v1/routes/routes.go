package routes

import (
	"net/http"

	"github.com/YazanYahya/codex/internal/api/v1/handlers"
	"github.com/YazanYahya/codex/internal/api/v1/handlers/assist"
	"github.com/YazanYahya/codex/internal/api/v1/middleware"
	"github.com/YazanYahya/codex/internal/bridge"
	"github.com/YazanYahya/codex/internal/services"
	"github.com/gorilla/mux"
)

// Register wires the REST surface and the editor bridge onto the router.
func Register(r *mux.Router, svc *services.Services, bridgeHandler *bridge.Handler) {
	r.HandleFunc("/v1/health", handlers.HandleHealth).Methods(http.MethodGet)

	completions := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assist.HandleCompletionSuggestions(svc.GetSuggestService(), w, req)
	})
	r.Handle("/v1/assist/completions",
		middleware.RateLimit("assist_completion")(completions)).Methods(http.MethodPost)

	r.HandleFunc("/ws/editor", bridgeHandler.HandleEditorSocket)
}
