package session

import "sync"

// Manager hands out per-session state keyed by session id. Get is the
// session lifecycle entry point: the first call for an id creates the four
// empty stores (registry records, chat engines, history entries, transcript)
// and the unset current-document reference; later calls return the same
// instance untouched.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Get returns the session for id, creating it on first use. Idempotent.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return sess
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[id]; ok {
		return sess
	}
	sess = newSession(id)
	m.sessions[id] = sess
	return sess
}

// Delete tears down the session for id and all of its state.
func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
