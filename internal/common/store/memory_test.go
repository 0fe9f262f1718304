// internal/common/store/memory_test.go

package store

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Load(ctx, KeyUsers); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Load on empty store err = %v, want ErrKeyNotFound", err)
	}

	payload := []byte(`[{"id":"1"}]`)
	if err := s.Save(ctx, KeyUsers, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(ctx, KeyUsers)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Load = %q, want %q", got, payload)
	}
}

func TestMemoryStoreRemove(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.Save(ctx, KeyTheme, []byte("dark")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Remove(ctx, KeyTheme); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Load(ctx, KeyTheme); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Load after remove err = %v, want ErrKeyNotFound", err)
	}

	// Removing an absent key is not an error
	if err := s.Remove(ctx, "never-written"); err != nil {
		t.Errorf("Remove absent key: %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := []byte("original")
	if err := s.Save(ctx, KeyLanguage, original); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Mutating the caller's slice must not reach the stored copy
	original[0] = 'X'

	got, err := s.Load(ctx, KeyLanguage)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("stored value mutated: %q", got)
	}

	// And mutating a loaded slice must not reach the store either
	got[0] = 'Y'
	again, _ := s.Load(ctx, KeyLanguage)
	if string(again) != "original" {
		t.Errorf("stored value mutated through Load result: %q", again)
	}
}
