// Package app is the composition root for sampler.
//
// Run wires the pieces together in order:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read config.toml
//	       ├─────> setupLogging()       Standard logger to the log file
//	       ├─────> prefs.Load()         Theme and edited name
//	       ├─────> state.NewStore()     The one shared store
//	       ├─────> store.Subscribe()    Transition logger
//	       └─────> ui.Run()             TUI (blocks)
//
// The store is created here and handed to the UI explicitly; nothing else
// holds a reference to it. The logger subscription is removed when Run
// returns.
//
// Fatal errors (returned from Run): unreadable or invalid config, a log file
// that cannot be created, and TUI failures. Preference problems are not
// fatal; defaults are used.
package app
