// Package storage provides the key-value store backends the state manager
// persists snapshots through.
//
// The main components are:
//
//   - [Store]: Interface defining Get/Set/Remove over opaque byte values
//   - [MemoryStore]: Process-lifetime map store, used as the fallback store
//     and as a test double
//   - [FileStore]: One file per key under a directory, written atomically
//   - [SQLiteStore]: Durable single-table store backed by modernc.org/sqlite
//
// All implementations are safe for concurrent access. A missing key is
// reported with [ErrNotFound]; every other error means the backend itself
// failed and the caller decides whether to fall back.
//
// Users of the prepstate library should not need this package directly
// unless they are wiring a custom store into the manager.
package storage
