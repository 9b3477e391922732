package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Manager issues and resolves sessions. Each session gets an isolated
// State keyed by a server-generated UUID, so concurrent clients never
// alias each other's datasets or request sequences.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*State

	clock clockwork.Clock
	ttl   time.Duration

	onCreate func()
}

// NewManager creates a Manager whose sessions expire datasets after ttl
// (zero disables expiry). onCreate, if non-nil, runs once per issued
// session; the caller typically wires it to an active-sessions gauge.
func NewManager(ttl time.Duration, clock clockwork.Clock, onCreate func()) *Manager {
	return &Manager{
		sessions: make(map[string]*State),
		clock:    clock,
		ttl:      ttl,
		onCreate: onCreate,
	}
}

// Create issues a new empty session and returns its ID.
func (m *Manager) Create() (string, *State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	st := newState(m.clock, m.ttl)
	m.sessions[id] = st

	if m.onCreate != nil {
		m.onCreate()
	}
	return id, st
}

// Get resolves a session ID to its State.
func (m *Manager) Get(id string) (*State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	return st, ok
}

// Count reports the number of issued sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
