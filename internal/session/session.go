package session

import (
	"sync"
	"time"

	"github.com/fernsdavid25/CiviDocAI/internal/history"
	"github.com/fernsdavid25/CiviDocAI/internal/registry"
)

// Message roles in the chat transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the session's chat transcript. Failed assistant
// turns are recorded with IsError set so the transcript stays a faithful
// replay of what the user saw.
type Message struct {
	Role      string
	Content   string
	Document  string
	IsError   bool
	CreatedAt time.Time
}

// Session is the explicit per-session context passed to every operation.
// Each session owns its registry, ledger and transcript; nothing is shared
// across sessions.
type Session struct {
	ID        string
	CreatedAt time.Time

	Registry *registry.Registry
	History  *history.Ledger

	mu       sync.Mutex
	messages []Message
}

func newSession(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
		Registry:  registry.NewRegistry(),
		History:   history.NewLedger(),
	}
}

// AppendMessage adds a turn to the chat transcript.
func (s *Session) AppendMessage(m Message) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m)
}

// Messages returns a snapshot of the transcript in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// ClearMessages empties the transcript.
func (s *Session) ClearMessages() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// DeleteDocument removes name from the registry, releases its chat engine
// and drops its ledger entry. Callers never observe a partial deletion.
func (s *Session) DeleteDocument(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Registry.Delete(name)
	s.History.Delete(name)
}
