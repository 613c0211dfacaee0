package prepstate

import (
	"errors"
	"log/slog"
	"time"

	"github.com/Tharun-Techie/prepstate/internal/storage"
)

// managerConfig holds mutable state during Manager construction.
type managerConfig struct {
	store     storage.Store
	fallback  storage.Store
	logger    *slog.Logger
	now       func() time.Time
	listeners []pendingListener
}

// pendingListener is a listener registered via option, attached once the
// manager exists.
type pendingListener struct {
	kind EventKind
	fn   Listener
}

// Option is a function that configures a [Manager] during construction.
//
// Option implements the functional options pattern. Options return an
// error if validation fails.
//
// Built-in options: [WithStore], [WithFallbackStore], [WithLogger],
// [WithClock], [WithListener].
type Option func(*managerConfig) error

// WithStore sets the primary, durable store snapshots are persisted to
// and loaded from.
//
// If not specified, an in-memory store is used and state does not survive
// the process.
//
// Returns an error if the store is nil.
func WithStore(s storage.Store) Option {
	return func(cfg *managerConfig) error {
		if s == nil {
			return errors.New("store cannot be nil")
		}
		cfg.store = s
		return nil
	}
}

// WithFallbackStore sets the secondary store that receives the snapshot
// when a write to the primary store fails.
//
// The fallback is write-only: it is never consulted on load. If not
// specified, failed primary writes are only logged.
//
// Returns an error if the store is nil.
func WithFallbackStore(s storage.Store) Option {
	return func(cfg *managerConfig) error {
		if s == nil {
			return errors.New("fallback store cannot be nil")
		}
		cfg.fallback = s
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the manager.
//
// This is where validation warnings, storage failures, and listener
// panics are reported. If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *managerConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithClock sets the time source used for lastVisited and progress
// timestamps. Intended for tests; defaults to [time.Now].
//
// Returns an error if the clock is nil.
func WithClock(now func() time.Time) Option {
	return func(cfg *managerConfig) error {
		if now == nil {
			return errors.New("clock cannot be nil")
		}
		cfg.now = now
		return nil
	}
}

// WithListener registers a listener during construction, before any
// mutation can fire. Equivalent to calling [Manager.Subscribe] on the
// new manager, except the subscription handle is discarded.
//
// Nil listeners are silently ignored.
func WithListener(kind EventKind, fn Listener) Option {
	return func(cfg *managerConfig) error {
		if fn == nil {
			return nil // no-op for nil listener (safe to call)
		}
		cfg.listeners = append(cfg.listeners, pendingListener{kind: kind, fn: fn})
		return nil
	}
}
