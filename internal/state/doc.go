// Package state holds the shared demo state and the reducer that changes it.
//
// # Overview
//
// A Store owns a single State snapshot with four fields (count, text, color,
// good). Writers submit Actions through Dispatch; readers take the current
// snapshot with State or register a Listener with Subscribe.
//
//	Writers (buttons):              Readers (panels, logger):
//	┌──────────────────┐           ┌──────────────────────┐
//	│ store.Dispatch() │──────────→│ Listener(snapshot)   │
//	│   Transition()   │  (mutex)  │ store.State()        │
//	└──────────────────┘           └──────────────────────┘
//
// # Actions
//
// Action is a closed variant. The four implementations are SetCount,
// SetText, SetColor and ToggleGood; other packages cannot add more. Each
// replaces exactly one field:
//
//	SET_COUNT   → Count = a.Count
//	SET_TEXT    → Text = a.Text
//	SET_COLOR   → Color = a.Color
//	TOGGLE_GOOD → IsGood = !IsGood
//
// Transition treats anything else, including a nil Action, as a no-op and
// returns the input state unchanged.
//
// ParseAction builds actions from their kind names for callers that receive
// them as text. It is the only place that reports errors (ErrUnknownAction,
// ErrInvalidPayload); Dispatch itself never fails.
//
// # Concurrency Model
//
//   - Dispatch holds the write lock while computing and storing the next
//     snapshot, so transitions never interleave.
//   - State holds the read lock and returns a copy.
//   - Listeners are called synchronously after the lock is released, in
//     registration order, with the snapshot the dispatch produced.
//   - Dispatch is safe from any goroutine, but only transitions are ordered.
//     With concurrent dispatchers, notifications for different dispatches
//     can interleave and arrive out of order. The UI dispatches from the
//     Bubble Tea loop alone; other callers should read State in the
//     listener when they need the newest value.
//
// # Usage Example
//
//	store := state.NewStore()
//	unsubscribe := store.Subscribe(func(s state.State) {
//		log.Printf("state now %s", s)
//	})
//	defer unsubscribe()
//
//	store.Dispatch(state.SetCount{Count: 5})
//	store.Dispatch(state.ToggleGood{})
//	fmt.Println(store.State().IsGood) // true
package state
