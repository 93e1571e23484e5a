package bridge

import (
	"context"
	"net/http"
	"time"

	"github.com/YazanYahya/codex/internal/services/completion"
	"github.com/YazanYahya/codex/internal/services/session"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The daemon binds locally; the front end connects from the
		// editor webview without a stable origin.
		return true
	},
}

// Handler owns the /ws/editor endpoint. Each accepted connection gets
// its own editor state mirror and session controller.
type Handler struct {
	completionService completion.Service
	historyService    *session.HistoryService
	manager           *Manager
}

func NewHandler(completionService completion.Service, historyService *session.HistoryService, manager *Manager) *Handler {
	return &Handler{
		completionService: completionService,
		historyService:    historyService,
		manager:           manager,
	}
}

// HandleEditorSocket upgrades the request and pumps editor events until
// the connection drops.
func (h *Handler) HandleEditorSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to upgrade editor connection")
		return
	}

	h.manager.AddConnection(conn)
	defer func() {
		h.manager.RemoveConnection(conn)
		conn.Close()
	}()

	timeouts := h.manager.Timeouts()
	state := newEditorState()
	panel := newWSPanel(conn, timeouts.WriteWait)
	controller := session.NewController(h.completionService, panel, state, h.historyService)

	log.Info().
		Str("session", controller.SessionID()).
		Int("connections", h.manager.ConnectionCount()).
		Msg("Editor connected")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	defer controller.Cancel()

	conn.SetReadDeadline(time.Now().Add(timeouts.PongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(timeouts.PongWait))
	})

	go h.pingLoop(ctx, conn, timeouts)

	for {
		var ev ClientEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("Editor connection closed unexpectedly")
			}
			return
		}

		h.handleEvent(ctx, controller, state, ev)
	}
}

// handleEvent routes one editor event. Exchange-starting events run on
// their own goroutine so state sync and cancellation stay responsive
// while a request is in flight; the controller's busy gate rejects
// overlapping dispatches.
func (h *Handler) handleEvent(ctx context.Context, controller *session.Controller, state *editorState, ev ClientEvent) {
	switch ev.Type {
	case EventState:
		state.update(ev)
	case EventAsk:
		go controller.AskQuestion(ctx, ev.Question)
	case EventSuggestFix:
		go controller.SuggestFix(ctx)
	case EventAskSelection:
		go controller.AskSelection(ctx, ev.Question)
	case EventCancel:
		controller.Cancel()
	default:
		log.Debug().Str("type", ev.Type).Msg("Ignoring unknown editor event")
	}
}

func (h *Handler) pingLoop(ctx context.Context, conn *websocket.Conn, timeouts TimeoutConfig) {
	ticker := time.NewTicker(timeouts.PingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deadline := time.Now().Add(timeouts.WriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}
