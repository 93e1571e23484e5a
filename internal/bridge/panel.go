package bridge

import (
	"sync"
	"time"

	"github.com/YazanYahya/codex/internal/services/session"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// wsPanel pushes transcript updates to the editor front end. Writes are
// serialised; gorilla connections allow one concurrent writer only.
type wsPanel struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	writeWait time.Duration
}

func newWSPanel(conn *websocket.Conn, writeWait time.Duration) *wsPanel {
	return &wsPanel{conn: conn, writeWait: writeWait}
}

func (p *wsPanel) send(ev ServerEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.conn.SetWriteDeadline(time.Now().Add(p.writeWait)); err != nil {
		log.Warn().Err(err).Msg("Failed to set write deadline on editor connection")
	}
	if err := p.conn.WriteJSON(ev); err != nil {
		log.Warn().Err(err).Str("event", ev.Type).Msg("Failed to push panel event")
	}
}

func (p *wsPanel) AppendMessage(msg session.Message) {
	p.send(ServerEvent{Type: EventAppend, Message: &msg})
}

func (p *wsPanel) ReplaceLastMessage(msg session.Message) {
	p.send(ServerEvent{Type: EventReplaceLast, Message: &msg})
}

func (p *wsPanel) SetBusy(busy bool) {
	p.send(ServerEvent{Type: EventBusy, Busy: busy})
}

func (p *wsPanel) ClearInput() {
	p.send(ServerEvent{Type: EventClearInput})
}
