package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/sampler/internal/state"
)

// stateMsg carries a snapshot published by the store.
type stateMsg state.State

// storeWatcher bridges store notifications into the Bubble Tea loop. The
// store calls listeners synchronously, often from inside Update, so the
// listener must never block: it parks the newest snapshot in a one-slot
// channel and a command delivers it as a message.
type storeWatcher struct {
	store       *state.Store
	mu          sync.Mutex // orders pushes
	updates     chan state.State
	done        chan struct{}
	unsubscribe func()
	stopOnce    sync.Once
}

func watchStore(store *state.Store) *storeWatcher {
	w := &storeWatcher{
		store:   store,
		updates: make(chan state.State, 1),
		done:    make(chan struct{}),
	}
	w.unsubscribe = store.Subscribe(func(state.State) { w.push() })
	return w
}

// push parks the store's current snapshot, replacing any snapshot not yet
// delivered. It reads the store instead of trusting the notified snapshot:
// with concurrent dispatchers, notifications can arrive out of order, but the
// last push always sees the latest state.
func (w *storeWatcher) push() {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := w.store.State()
	for {
		select {
		case w.updates <- s:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}

// wait returns a command that blocks until the next snapshot arrives.
func (w *storeWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-w.updates:
			return stateMsg(s)
		case <-w.done:
			return nil
		}
	}
}

// stop detaches from the store and releases any pending wait.
func (w *storeWatcher) stop() {
	w.stopOnce.Do(func() {
		w.unsubscribe()
		close(w.done)
	})
}
