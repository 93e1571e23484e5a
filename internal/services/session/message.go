package session

import "time"

// Origin identifies which side of the conversation produced a message.
type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
)

// ProcessingMessage is the provisional placeholder appended on dispatch
// and replaced in place once the exchange resolves.
const ProcessingMessage = "Processing your request..."

// Message is one transcript entry.
type Message struct {
	Content string    `json:"content"`
	Origin  Origin    `json:"origin"`
	Time    time.Time `json:"time"`
}
