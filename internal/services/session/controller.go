package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/YazanYahya/codex/internal/services/completion"
	"github.com/YazanYahya/codex/internal/services/prompt"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// defaultLanguage is used for prompt phrasing when the language provider
// is unavailable.
const defaultLanguage = "JavaScript"

// Panel is the UI collaborator: a transcript container, an input control
// and a busy indicator. The controller drives it; it never calls back.
type Panel interface {
	AppendMessage(msg Message)
	ReplaceLastMessage(msg Message)
	SetBusy(busy bool)
	ClearInput()
}

// Workspace is the host editor collaborator.
type Workspace interface {
	// DocumentText returns the current full document text.
	DocumentText() string
	// SelectionText returns the text of the current selection, or ""
	// when nothing is selected.
	SelectionText() string
	// CompilerError returns the current compiler error text, or "" when
	// there is none.
	CompilerError() string
	// Language resolves the user's currently selected target language.
	// It is used for prompt phrasing only.
	Language(ctx context.Context) (string, error)
}

// Controller sequences one request/response exchange at a time: it
// appends the user's message and a provisional placeholder, awaits the
// completion service, then replaces the placeholder in place with the
// reply or an error message.
//
// State machine per exchange: Idle -> AwaitingResponse -> Resolved ->
// Idle. The busy flag rejects new dispatches while an exchange is
// awaiting resolution; each exchange carries an id, and a resolution is
// applied only if its id is still the most recently dispatched one.
type Controller struct {
	mu                sync.Mutex
	completionService completion.Service
	panel             Panel
	workspace         Workspace
	history           *HistoryService
	transcript        *Transcript

	sessionID       string
	busy            bool
	currentExchange uuid.UUID
	cancelCurrent   context.CancelFunc
}

func NewController(completionService completion.Service, panel Panel, workspace Workspace, history *HistoryService) *Controller {
	return &Controller{
		completionService: completionService,
		panel:             panel,
		workspace:         workspace,
		history:           history,
		transcript:        NewTranscript(),
		sessionID:         uuid.New().String(),
	}
}

// SessionID identifies this controller's conversation for history storage.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Transcript exposes the conversation history.
func (c *Controller) Transcript() *Transcript {
	return c.transcript
}

// Busy reports whether an exchange is awaiting resolution.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// AskQuestion runs a free-form question through the pipeline with the
// full document as code context. Returns false if the question is empty
// or an exchange is already in flight.
func (c *Controller) AskQuestion(ctx context.Context, question string) bool {
	if strings.TrimSpace(question) == "" {
		return false
	}

	document := c.workspace.DocumentText()
	return c.dispatch(ctx, question, func(language string) prompt.Pair {
		return prompt.ForQuestion(question, document, language)
	}, true)
}

// SuggestFix asks for a fix of the current compiler error. With no error
// available this is a guarded no-op: no transcript mutation, no network
// call, straight back to idle.
func (c *Controller) SuggestFix(ctx context.Context) bool {
	compilerError := c.workspace.CompilerError()
	if strings.TrimSpace(compilerError) == "" {
		log.Debug().Msg("Fix suggestion requested without a compiler error")
		return false
	}

	document := c.workspace.DocumentText()
	userContent := "Please suggest a fix for this error:\n" + compilerError
	return c.dispatch(ctx, userContent, func(language string) prompt.Pair {
		return prompt.ForCompileFix(compilerError, document, language)
	}, false)
}

// Cancel aborts the in-flight exchange, if any. The provisional message
// is finalised as cancelled and a late result from the aborted request
// is discarded by the exchange-id check when it eventually lands.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.busy {
		return
	}

	if c.cancelCurrent != nil {
		c.cancelCurrent()
		c.cancelCurrent = nil
	}
	c.currentExchange = uuid.Nil

	final := Message{Content: "Request cancelled.", Origin: OriginAssistant, Time: time.Now()}
	c.transcript.ReplaceLast(final)
	c.panel.ReplaceLastMessage(final)
	c.busy = false
	c.panel.SetBusy(false)
}

// dispatch moves the controller from Idle to AwaitingResponse, runs the
// pipeline, and resolves. userContent becomes the visible user message;
// buildPair constructs the prompt once the target language is known.
func (c *Controller) dispatch(ctx context.Context, userContent string, buildPair func(language string) prompt.Pair, clearInput bool) bool {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		log.Debug().Msg("Dispatch rejected - exchange already in flight")
		return false
	}
	c.busy = true

	exchangeID := uuid.New()
	c.currentExchange = exchangeID

	ctx, cancel := context.WithCancel(ctx)
	c.cancelCurrent = cancel

	c.panel.SetBusy(true)

	userMsg := Message{Content: userContent, Origin: OriginUser, Time: time.Now()}
	c.transcript.Append(userMsg)
	c.panel.AppendMessage(userMsg)

	provisional := Message{Content: ProcessingMessage, Origin: OriginAssistant, Time: time.Now()}
	c.transcript.Append(provisional)
	c.panel.AppendMessage(provisional)
	c.mu.Unlock()

	language, err := c.workspace.Language(ctx)
	if err != nil || language == "" {
		log.Warn().Err(err).Msg("Language provider unavailable, using default")
		language = defaultLanguage
	}

	reply, err := c.completionService.Send(ctx, buildPair(language))
	c.resolve(exchangeID, reply, err, clearInput)
	return true
}

// resolve finalises an exchange: the provisional message is the last
// transcript element and is exactly the element mutated. Resolutions for
// exchanges that are no longer current are discarded silently. The busy
// indicator is always cleared for a current exchange, success or not.
func (c *Controller) resolve(exchangeID uuid.UUID, reply string, sendErr error, clearInput bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if exchangeID != c.currentExchange {
		log.Debug().Str("exchange", exchangeID.String()).Msg("Discarding stale exchange resolution")
		return
	}

	var final Message
	if sendErr != nil {
		final = Message{Content: "Error: " + sendErr.Error(), Origin: OriginAssistant, Time: time.Now()}
	} else {
		final = Message{Content: reply, Origin: OriginAssistant, Time: time.Now()}
	}

	c.transcript.ReplaceLast(final)
	c.panel.ReplaceLastMessage(final)

	c.busy = false
	c.cancelCurrent = nil
	c.panel.SetBusy(false)
	if clearInput {
		c.panel.ClearInput()
	}

	if c.history != nil {
		if err := c.history.Save(context.Background(), c.sessionID, c.transcript.Messages()); err != nil {
			log.Warn().Err(err).Str("session", c.sessionID).Msg("Failed to persist transcript")
		}
	}
}
