// internal/session/manager_test.go

package session

import (
	"context"
	"errors"
	"testing"

	kvstore "github.com/aviato-app/aviato-backend/internal/common/store"
)

func TestManagerDefaults(t *testing.T) {
	m := NewManager(kvstore.NewMemoryStore())

	if m.CurrentUserID() != "" {
		t.Errorf("fresh session has user %q", m.CurrentUserID())
	}
	if m.Language() != "en" {
		t.Errorf("default language = %q, want en", m.Language())
	}
	if m.Theme() != ThemeLight {
		t.Errorf("default theme = %q, want light", m.Theme())
	}
}

func TestManagerPersistsAcrossRestart(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	m := NewManager(kv)
	if err := m.SetCurrentUser(ctx, "current-user"); err != nil {
		t.Fatalf("SetCurrentUser: %v", err)
	}
	if err := m.SetLanguage(ctx, "es"); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if err := m.SetTheme(ctx, ThemeDark); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}

	reloaded := NewManager(kv)
	if reloaded.CurrentUserID() != "current-user" {
		t.Errorf("user = %q", reloaded.CurrentUserID())
	}
	if reloaded.Language() != "es" {
		t.Errorf("language = %q", reloaded.Language())
	}
	if reloaded.Theme() != ThemeDark {
		t.Errorf("theme = %q", reloaded.Theme())
	}
}

func TestManagerClearCurrentUser(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	m := NewManager(kv)
	m.SetCurrentUser(ctx, "current-user")
	m.SetLanguage(ctx, "fr")

	if err := m.ClearCurrentUser(ctx); err != nil {
		t.Fatalf("ClearCurrentUser: %v", err)
	}
	if m.CurrentUserID() != "" {
		t.Errorf("user after clear = %q", m.CurrentUserID())
	}

	// Preferences survive logout
	reloaded := NewManager(kv)
	if reloaded.CurrentUserID() != "" {
		t.Errorf("reloaded user = %q", reloaded.CurrentUserID())
	}
	if reloaded.Language() != "fr" {
		t.Errorf("language lost on logout: %q", reloaded.Language())
	}
}

func TestManagerRejectsUnknownValues(t *testing.T) {
	m := NewManager(kvstore.NewMemoryStore())
	ctx := context.Background()

	if err := m.SetLanguage(ctx, "tlh"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("SetLanguage err = %v, want ErrUnknownLanguage", err)
	}
	if err := m.SetTheme(ctx, "solarized"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("SetTheme err = %v, want ErrUnknownTheme", err)
	}
}

func TestManagerCorruptStoredValuesFallBack(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	kv.Save(ctx, kvstore.KeyLanguage, []byte("klingon"))
	kv.Save(ctx, kvstore.KeyTheme, []byte("neon"))

	m := NewManager(kv)
	if m.Language() != "en" {
		t.Errorf("language = %q, want fallback en", m.Language())
	}
	if m.Theme() != ThemeLight {
		t.Errorf("theme = %q, want fallback light", m.Theme())
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		language string
		key      string
		want     string
	}{
		{"en", "status.online", "Online now"},
		{"es", "status.online", "En línea ahora"},
		{"fr", "status.online", "En ligne"},
		// Unknown language falls back to English
		{"de", "status.online", "Online now"},
		// Unknown key falls back to the key itself
		{"en", "no.such.key", "no.such.key"},
	}

	for _, tt := range tests {
		if got := Translate(tt.language, tt.key); got != tt.want {
			t.Errorf("Translate(%q, %q) = %q, want %q", tt.language, tt.key, got, tt.want)
		}
	}
}
