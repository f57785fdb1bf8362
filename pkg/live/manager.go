package live

import "sync"

// Manager tracks connected sessions. The handler registers sessions on
// upgrade and removes them when they close; Shutdown closes the rest.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) add(s *Session) {
	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()
	getMetrics().activeSessions.Inc()
}

func (m *Manager) remove(s *Session) {
	m.mu.Lock()
	_, ok := m.sessions[s.id]
	delete(m.sessions, s.id)
	m.mu.Unlock()
	if ok {
		getMetrics().activeSessions.Dec()
	}
}

// Len returns the number of connected sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown closes every connected session.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	open := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		open = append(open, s)
	}
	m.mu.Unlock()

	for _, s := range open {
		s.Close()
	}
}
