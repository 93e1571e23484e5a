package session

import "sync"

// Transcript is the ordered conversation history. It is append-only with
// a single exception: the last element may be replaced in place, which is
// how a provisional message becomes the final reply or an error. No other
// element is ever touched after it is written.
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, msg)
}

// ReplaceLast overwrites the final transcript entry. It is a no-op on an
// empty transcript.
func (t *Transcript) ReplaceLast(msg Message) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.messages) == 0 {
		return
	}
	t.messages[len(t.messages)-1] = msg
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of transcript entries.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
