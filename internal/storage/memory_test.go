package storage

import (
	"errors"
	"testing"
)

func TestNewMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	if store == nil {
		t.Fatal("NewMemoryStore() = nil")
	}

	if got := store.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get("absent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(absent) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Set("k", []byte("value")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get() = %q, want %q", got, "value")
	}
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	store := NewMemoryStore()

	_ = store.Set("k", []byte("first"))
	_ = store.Set("k", []byte("second"))

	got, err := store.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestMemoryStore_Remove(t *testing.T) {
	store := NewMemoryStore()

	_ = store.Set("k", []byte("value"))
	if err := store.Remove("k"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	if _, err := store.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Remove() error = %v, want ErrNotFound", err)
	}

	// removing again is a no-op
	if err := store.Remove("k"); err != nil {
		t.Errorf("Remove() of absent key error = %v, want nil", err)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()

	_ = store.Set("k", []byte("abc"))

	first, _ := store.Get("k")
	first[0] = 'z'

	second, _ := store.Get("k")
	if string(second) != "abc" {
		t.Errorf("Get() after caller mutation = %q, want %q", second, "abc")
	}
}

func TestMemoryStore_SetCopiesValue(t *testing.T) {
	store := NewMemoryStore()

	value := []byte("abc")
	_ = store.Set("k", value)
	value[0] = 'z'

	got, _ := store.Get("k")
	if string(got) != "abc" {
		t.Errorf("Get() after input mutation = %q, want %q", got, "abc")
	}
}
