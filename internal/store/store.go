package store

import (
	"sync"
	"sync/atomic"

	"github.com/iburimskiy/kaleidoscope/internal/pattern"
)

// Store holds the current ParameterSet. Readers get an immutable snapshot;
// writers build a new set and swap it in, so a frame never sees a half
// applied change.
type Store struct {
	current atomic.Pointer[pattern.ParameterSet]

	// writers serialize among themselves; readers never take it
	mu   sync.Mutex
	subs []chan struct{}
}

func New(p pattern.ParameterSet) *Store {
	s := &Store{}
	s.current.Store(&p)
	return s
}

// Params returns a copy of the current parameters.
func (s *Store) Params() pattern.ParameterSet {
	return *s.current.Load()
}

// Update applies fn to a copy of the current parameters and publishes it.
func (s *Store) Update(fn func(p *pattern.ParameterSet)) pattern.ParameterSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.current.Load()
	fn(&next)
	s.current.Store(&next)
	s.notify()
	return next
}

// Replace publishes p wholesale.
func (s *Store) Replace(p pattern.ParameterSet) {
	s.Update(func(dst *pattern.ParameterSet) { *dst = p })
}

// Subscribe returns a channel that receives a value after changes. Pending
// notifications coalesce; receivers read the store for the new state.
func (s *Store) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

func (s *Store) notify() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
