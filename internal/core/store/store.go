// Package store holds the central session state and reduces outcome events
// into it. Dispatch is serialized with a mutex so each reduction is atomic;
// overlapping actions are not ordered beyond that, and the store simply
// keeps whichever outcome lands last.
package store

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

// Watcher observes session snapshots after each reduction.
type Watcher func(domain.Session)

// Hook observes raw events as they are dispatched, before reduction.
type Hook func(domain.Event)

type Store struct {
	mu       sync.Mutex
	state    domain.Session
	watchers []Watcher
	hooks    []Hook
	log      zerolog.Logger
}

func New(log zerolog.Logger) *Store {
	return &Store{log: log}
}

// Dispatch reduces ev into the session and notifies watchers with the
// resulting snapshot. Watchers run outside the lock.
func (s *Store) Dispatch(ev domain.Event) {
	s.mu.Lock()
	s.state = Reduce(s.state, ev)
	snap := s.state
	watchers := s.watchers
	hooks := s.hooks
	s.mu.Unlock()

	s.log.Debug().
		Str("event", string(ev.Type)).
		Bool("is_authenticated", snap.IsAuthenticated).
		Msg("session event")

	for _, h := range hooks {
		h(ev)
	}
	for _, w := range watchers {
		w(snap)
	}
}

// State returns a snapshot of the current session.
func (s *Store) State() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Watch registers a watcher for future snapshots.
func (s *Store) Watch(w Watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, w)
}

// OnDispatch registers a hook invoked for every dispatched event.
func (s *Store) OnDispatch(h Hook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, h)
}
