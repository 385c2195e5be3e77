package live

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/debounce"
	"github.com/dmitrymomot/formkit/pkg/feedback"
)

// ErrTooManySessions is returned when the session registry is full.
var ErrTooManySessions = errors.New("live: too many sessions")

// session tracks one connected client: its SSE stream (if any) and the
// per-field debouncers that coalesce interaction events between pushes.
type session struct {
	id string

	mu     sync.Mutex
	stream feedback.Patcher

	debouncers *debounce.Group
}

func newSession(id string) *session {
	return &session{id: id, debouncers: debounce.NewGroup()}
}

// attach binds the session to an SSE stream. Any previously attached
// stream is replaced; the client reconnecting supersedes the old one.
func (s *session) attach(p feedback.Patcher) {
	s.mu.Lock()
	s.stream = p
	s.mu.Unlock()
}

// detach clears the stream if it is still the given one, so a stale
// disconnect does not tear down a fresh reconnect.
func (s *session) detach(p feedback.Patcher) {
	s.mu.Lock()
	if s.stream == p {
		s.stream = nil
	}
	s.mu.Unlock()
}

// patcher returns the currently attached stream, or nil.
func (s *session) patcher() feedback.Patcher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream
}

// sessionRegistry holds live sessions keyed by ID.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session
	max      int
}

func newSessionRegistry(max int) *sessionRegistry {
	if max <= 0 {
		max = 1024
	}
	return &sessionRegistry{sessions: make(map[string]*session), max: max}
}

// create registers a new session under a fresh UUID.
func (r *sessionRegistry) create() (*session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sessions) >= r.max {
		return nil, ErrTooManySessions
	}
	s := newSession(uuid.NewString())
	r.sessions[s.id] = s
	return s, nil
}

// get returns the session with the given ID, if registered.
func (r *sessionRegistry) get(id string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// remove drops the session and cancels its pending debouncers.
func (r *sessionRegistry) remove(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.debouncers.StopAll()
	}
}

// len reports the number of tracked sessions.
func (r *sessionRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
