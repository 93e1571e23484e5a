package bridge

import (
	"context"
	"sync"
)

// editorState is the daemon-side mirror of one editor's buffer, kept
// current by "state" events. It satisfies session.Workspace.
type editorState struct {
	mu         sync.RWMutex
	document   string
	selection  string
	diagnostic string
	language   string
}

func newEditorState() *editorState {
	return &editorState{}
}

func (s *editorState) update(ev ClientEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = ev.Document
	s.selection = ev.Selection
	s.diagnostic = ev.Diagnostic
	if ev.Language != "" {
		s.language = ev.Language
	}
}

func (s *editorState) DocumentText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

func (s *editorState) SelectionText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

func (s *editorState) CompilerError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.diagnostic
}

func (s *editorState) Language(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language, nil
}
