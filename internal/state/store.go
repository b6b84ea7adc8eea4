package state

import (
	"sync"
)

// Listener receives the snapshot produced by a dispatch.
type Listener func(State)

// Store owns the current snapshot and applies actions to it.
type Store struct {
	mu        sync.RWMutex
	current   State
	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// NewStore returns a store holding InitialState.
func NewStore() *Store {
	return &Store{current: InitialState()}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Dispatch applies a to the current snapshot and then notifies listeners in
// registration order. Listeners run after the lock is released, so they may
// read the store or dispatch again.
//
// Transitions are serialized, notifications are not: when several goroutines
// dispatch at once, a listener may see their snapshots in a different order
// than they were applied. Listeners that need the latest value should call
// State.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	next := Transition(s.current, a)
	s.current = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, sub := range s.listeners {
		listeners = append(listeners, sub.fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// Subscribe registers fn for every subsequent dispatch and returns a func
// that removes it. Calling the returned func more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.listeners {
		if sub.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}
