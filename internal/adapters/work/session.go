// Package work implements the long-running-work session over tracked
// tokens.
package work

import (
	"fmt"
	"sync"

	"go.trai.ch/plansync/internal/core/ports"
)

// token is the concrete work token handed to callers.
type token struct {
	id   uint64
	name string
}

// ID returns the token's identifier.
func (t *token) ID() uint64 { return t.id }

// Session implements ports.WorkSession. Every Begin must be balanced by
// exactly one End; a second End on the same token is a logged no-op. Wait
// blocks until all outstanding tokens are released, which the shutdown path
// uses to let in-flight syncs finish their teardown.
type Session struct {
	log ports.Logger

	mu     sync.Mutex
	idle   *sync.Cond
	nextID uint64
	active map[uint64]string
}

// NewSession creates an empty Session.
func NewSession(log ports.Logger) *Session {
	s := &Session{
		log:    log,
		active: make(map[uint64]string),
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Begin acquires a new work token.
func (s *Session) Begin(name string) ports.WorkToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.active[s.nextID] = name
	return &token{id: s.nextID, name: name}
}

// End releases the token. Unknown and already-released tokens are warned
// about and otherwise ignored.
func (s *Session) End(t ports.WorkToken) {
	if t == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.active[t.ID()]; !exists {
		s.log.Warn(fmt.Sprintf("work token %d released twice", t.ID()))
		return
	}

	delete(s.active, t.ID())
	if len(s.active) == 0 {
		s.idle.Broadcast()
	}
}

// ActiveCount returns the number of outstanding tokens.
func (s *Session) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Wait blocks until every outstanding token has been released.
func (s *Session) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for len(s.active) > 0 {
		s.idle.Wait()
	}
}
