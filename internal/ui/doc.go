// Package ui provides the Bubble Tea interface for sampler.
//
// # Layout
//
//	SAMPLER  theme Nightfox
//	╭ Greetings ─────────────╮
//	│ Hello, sampler !       │
//	│ [Click Me]             │
//	╰────────────────────────╯
//	╭ ReducerSample ─────────╮
//	│ count: 0               │
//	│ text: hello            │
//	│ color: red             │
//	│ good: false            │
//	│ [count] [text] [color] [good]
//	╰────────────────────────╯
//	status line
//	key help
//
// # Data Flow
//
// The model never mutates state itself. Buttons dispatch actions to the
// state.Store passed in Options; the model learns about the result through a
// store subscription (storeWatcher) that is delivered as a stateMsg and
// re-armed after every message.
//
// # Files
//
//   - app.go: Model, key handling, layout and Run
//   - greeting.go: Greeting component and its click message
//   - reducer.go: reducer panel, button focus order and dispatch helpers
//   - watch.go: store subscription bridge
//   - keys.go: key bindings used by bubbles/help
//   - help.go: full-screen help overlay
//   - theme.go: themes and Lipgloss styles
package ui
