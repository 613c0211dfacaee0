package storage

import "errors"

// ErrNotFound is returned by [Store.Get] when no value exists for a key.
//
// Callers should test for it with [errors.Is]; it is the only way a store
// distinguishes "absent" from a real storage failure.
var ErrNotFound = errors.New("storage: key not found")

// Store defines the key-value contract the state manager persists through.
//
// Store implementations must be safe for concurrent access. Values are
// opaque byte slices; the manager serializes its own snapshot format.
// Any error other than [ErrNotFound] indicates the store itself failed
// (unavailable, quota exceeded, I/O error) and the caller is expected to
// log it and continue serving from memory.
type Store interface {
	// Get returns the value stored under key.
	// Returns ErrNotFound if the key has never been set or was removed.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Remove deletes the value stored under key.
	// Removing an absent key is a no-op, not an error.
	Remove(key string) error
}
