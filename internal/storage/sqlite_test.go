package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Error("OpenSQLite(\"\") error = nil, want error")
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := openTestSQLite(t)

	if err := store.Set("app.state", []byte(`{"theme":"dark"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get("app.state")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != `{"theme":"dark"}` {
		t.Errorf("Get() = %q, want %q", got, `{"theme":"dark"}`)
	}
}

func TestSQLiteStore_GetMissing(t *testing.T) {
	store := openTestSQLite(t)

	if _, err := store.Get("absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(absent) error = %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	store := openTestSQLite(t)

	_ = store.Set("k", []byte("first"))
	_ = store.Set("k", []byte("second"))

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}
}

func TestSQLiteStore_Remove(t *testing.T) {
	store := openTestSQLite(t)

	_ = store.Set("k", []byte("v"))
	if err := store.Remove("k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, err := store.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Remove() error = %v, want ErrNotFound", err)
	}
	if err := store.Remove("k"); err != nil {
		t.Errorf("Remove() of absent key error = %v, want nil", err)
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := store.Set("k", []byte("durable")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("k")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if string(got) != "durable" {
		t.Errorf("Get() after reopen = %q, want %q", got, "durable")
	}
}

func TestSQLiteStore_CloseNil(t *testing.T) {
	var store *SQLiteStore
	if err := store.Close(); err != nil {
		t.Errorf("Close() on nil store error = %v, want nil", err)
	}
}
