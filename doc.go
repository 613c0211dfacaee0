// Package prepstate manages the client-side state of a coding-practice
// problem catalog: which problems are solved or bookmarked, the active
// theme, search and filter settings, and per-company progress.
//
// The package is designed SDK-first. A [Manager] owns the state, persists
// a snapshot of it through a key-value store on every accepted change,
// and dispatches typed events to registered listeners. All failure handling follows one policy: a rejected input is
// reported as a boolean false, a storage failure is logged and absorbed
// (falling back to the secondary store on writes), and nothing ever
// panics out of a mutator.
//
// # Quick Start
//
// Create a manager, mutate state, observe changes:
//
//	m, err := prepstate.New()
//	if err != nil {
//	    slog.Error("failed to create manager", "error", err)
//	    os.Exit(1)
//	}
//
//	m.Subscribe(prepstate.EventSolvedStatusChanged, func(e prepstate.Event) {
//	    change := e.(prepstate.SolvedStatusChanged)
//	    fmt.Println(change.ID, change.Solved)
//	})
//
//	m.SetSolved("two-sum", true)
//
// # Configuration
//
// Managers are configured with functional options:
//
//	store, _ := storage.NewFileStore(dir)
//	m, err := prepstate.New(
//	    prepstate.WithStore(store),
//	    prepstate.WithFallbackStore(storage.NewMemoryStore()),
//	    prepstate.WithLogger(logger),
//	)
//
// If no store is configured, state lives only in memory for the lifetime
// of the manager.
//
// # Events
//
// Events are a closed set of payload types, one per state change kind
// (see [EventKind]). Listeners run synchronously, in registration order,
// after the change has been applied and persisted. A listener that panics
// is recovered and logged with a correlation ID; remaining listeners still
// run and the mutator that triggered the dispatch is unaffected.
//
// # Persistence
//
// Snapshots are JSON, written under a single fixed key. The primary store
// is the durable one; the fallback store only ever receives writes, as a
// safety net when the primary fails. On construction the manager overlays
// any previously persisted snapshot field by field, so a missing or
// malformed field degrades to its default instead of discarding the rest
// of the snapshot.
package prepstate
