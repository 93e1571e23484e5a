package bridge

import "github.com/YazanYahya/codex/internal/services/session"

// Client event types. The editor front end drives the assistant with
// these; "state" keeps the daemon's view of the buffer in sync so guard
// conditions and prompt context are evaluated server-side.
const (
	EventAsk          = "ask"
	EventSuggestFix   = "suggest_fix"
	EventAskSelection = "ask_selection"
	EventCancel       = "cancel"
	EventState        = "state"
)

// Server event types: the Panel collaborator on the wire.
const (
	EventAppend      = "append"
	EventReplaceLast = "replace_last"
	EventBusy        = "busy"
	EventClearInput  = "clear_input"
)

// ClientEvent is one inbound message from the editor front end.
type ClientEvent struct {
	Type string `json:"type"`

	// ask / ask_selection
	Question string `json:"question,omitempty"`

	// state sync
	Document   string `json:"document,omitempty"`
	Selection  string `json:"selection,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
	Language   string `json:"language,omitempty"`
}

// ServerEvent is one outbound transcript/indicator update.
type ServerEvent struct {
	Type    string           `json:"type"`
	Message *session.Message `json:"message,omitempty"`
	Busy    bool             `json:"busy,omitempty"`
}
