package interview

import (
	"sync"

	"github.com/gridhire/gridhire/internal/utils"
)

// Registry is the in-process session table. Sessions live for the lifetime
// of the process; there is no eviction. Every session id maps to an entry
// with its own mutex so concurrent requests on the same interview serialize
// (a duplicate submit cannot double-advance the question index) while
// different interviews proceed in parallel.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

type entry struct {
	mu sync.Mutex
	s  *Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*entry)}
}

// Put registers a session under its id. The caller must not mutate the
// session afterwards except through With.
func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	r.sessions[s.ID] = &entry{s: s}
	r.mu.Unlock()
}

// With runs fn while holding the session's lock. Returns utils.ErrNotFound
// when the id is unknown.
func (r *Registry) With(id string, fn func(*Session) error) error {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return utils.ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.s)
}

// Len reports how many sessions the table currently holds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
