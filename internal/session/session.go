// Package session holds the explicit per-interaction state: a session
// identifier, the add-attempt rate limiter, and the admin-unlock flag.
// There is no ambient global state; every service call that needs
// throttling or the admin flag receives a *Session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Defaults for the fixed-window add limiter.
const (
	DefaultAddWindow      = 30 * time.Second
	DefaultMaxAddAttempts = 5
)

type Session struct {
	ID string

	mu          sync.Mutex
	window      time.Duration
	maxAttempts int
	windowStart time.Time
	attempts    int
	admin       bool
	now         func() time.Time
}

// New returns a fresh session with a random ID. Non-positive window or
// attempt values fall back to the defaults.
func New(window time.Duration, maxAttempts int) *Session {
	if window <= 0 {
		window = DefaultAddWindow
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAddAttempts
	}
	return &Session{
		ID:          uuid.NewString(),
		window:      window,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
}

// AllowAdd records one add attempt and reports whether it fits in the
// current fixed window. This is advisory spam mitigation, not a security
// control: the count resets as soon as a full window has elapsed.
func (s *Session) AllowAdd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.windowStart.IsZero() || now.Sub(s.windowStart) >= s.window {
		s.windowStart = now
		s.attempts = 0
	}
	s.attempts++
	return s.attempts <= s.maxAttempts
}

// UnlockAdmin flips the admin flag for the rest of the session.
func (s *Session) UnlockAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = true
}

func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}
