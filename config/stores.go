package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Tharun-Techie/prepstate/internal/storage"
)

// Stores holds the primary/fallback store pair built from a Config.
//
// Close releases whatever the backends hold open (currently only the
// sqlite backend keeps a resource). It is safe to call once regardless
// of which backends were selected.
type Stores struct {
	Primary  storage.Store
	Fallback storage.Store

	closers []func() error
}

// Close closes every backend that needs closing.
func (s *Stores) Close() error {
	var firstErr error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// BuildStores constructs the primary and fallback stores described by cfg.
func BuildStores(cfg *Config) (*Stores, error) {
	stores := &Stores{}

	primary, err := buildStore(cfg.Storage, stores)
	if err != nil {
		_ = stores.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}
	stores.Primary = primary

	fallback, err := buildStore(cfg.Fallback, stores)
	if err != nil {
		_ = stores.Close()
		return nil, fmt.Errorf("fallback: %w", err)
	}
	stores.Fallback = fallback

	return stores, nil
}

func buildStore(sc StoreConfig, stores *Stores) (storage.Store, error) {
	switch sc.Backend {
	case BackendFile:
		return storage.NewFileStore(sc.Path)
	case BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(sc.Path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		db, err := storage.OpenSQLite(sc.Path)
		if err != nil {
			return nil, err
		}
		stores.closers = append(stores.closers, db.Close)
		return db, nil
	case BackendMemory:
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", sc.Backend)
	}
}
