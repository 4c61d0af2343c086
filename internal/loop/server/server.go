// Package server keeps track of the matches running over SSH and tells them
// when the host is going down.
package server

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Lobby is the interface sessions use to announce themselves. It decouples
// the client from the concrete Registry for testing.
type Lobby interface {
	Register(username string) *SessionHandle
	Unregister(id uuid.UUID)
	Count() int
}

// SessionHandle is a session's membership in the lobby.
type SessionHandle struct {
	ID       uuid.UUID
	Username string
	Joined   time.Time
	EventsCh chan SessionEvent // Events sent to the session (shutdown, etc.)
}

// SessionEvent is a notification from the server to a session.
type SessionEvent struct {
	Type SessionEventType
}

// SessionEventType identifies the type of session event.
type SessionEventType int

const (
	EventServerShutdown SessionEventType = iota
)

// SessionInfo is a read-only view of a registered session.
type SessionInfo struct {
	ID       uuid.UUID
	Username string
	Joined   time.Time
}

// Registry tracks live sessions. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*SessionHandle
	closing  bool
	now      func() time.Time
}

// Compile-time check that Registry implements Lobby.
var _ Lobby = (*Registry)(nil)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*SessionHandle),
		now:      time.Now,
	}
}

// Register adds a session and returns its handle. Sessions registered after
// Shutdown started receive the shutdown event immediately.
func (r *Registry) Register(username string) *SessionHandle {
	handle := &SessionHandle{
		ID:       uuid.New(),
		Username: username,
		Joined:   r.now(),
		EventsCh: make(chan SessionEvent, 4),
	}

	r.mu.Lock()
	r.sessions[handle.ID] = handle
	if r.closing {
		handle.EventsCh <- SessionEvent{Type: EventServerShutdown}
	}
	r.mu.Unlock()

	return handle
}

// Unregister removes a session. Unknown IDs are ignored.
func (r *Registry) Unregister(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Count returns the number of live sessions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sessions returns the live sessions, oldest first.
func (r *Registry) Sessions() []SessionInfo {
	r.mu.RLock()
	out := make([]SessionInfo, 0, len(r.sessions))
	for _, h := range r.sessions {
		out = append(out, SessionInfo{ID: h.ID, Username: h.Username, Joined: h.Joined})
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b SessionInfo) int {
		if c := a.Joined.Compare(b.Joined); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.String(), b.ID.String())
	})
	return out
}

// Shutdown notifies every session that the server is going down and waits
// for them to disconnect, up to timeout. Returns the number of sessions
// still connected when it gave up.
func (r *Registry) Shutdown(timeout time.Duration) int {
	r.mu.Lock()
	r.closing = true
	for _, handle := range r.sessions {
		select {
		case handle.EventsCh <- SessionEvent{Type: EventServerShutdown}:
		default:
		}
	}
	r.mu.Unlock()

	// Wait for all sessions to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if remaining := r.Count(); remaining == 0 {
			return 0
		}
		select {
		case <-deadline:
			return r.Count()
		case <-ticker.C:
		}
	}
}
