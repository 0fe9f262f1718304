// internal/session/manager.go

package session

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	kvstore "github.com/aviato-app/aviato-backend/internal/common/store"
)

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	DefaultTheme = ThemeLight
)

var (
	ErrUnknownLanguage = errors.New("unsupported language")
	ErrUnknownTheme    = errors.New("unsupported theme")
)

// Manager holds the app-level session state: who is signed in, plus
// the language and theme preferences. Preferences survive restarts;
// unreadable stored values fall back to defaults.
type Manager struct {
	kv kvstore.KVStore

	mu            sync.RWMutex
	currentUserID string
	language      string
	theme         string
}

func NewManager(kv kvstore.KVStore) *Manager {
	m := &Manager{
		kv:       kv,
		language: DefaultLanguage,
		theme:    DefaultTheme,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m.currentUserID = m.loadString(ctx, kvstore.KeyCurrentUser, "")

	if lang := m.loadString(ctx, kvstore.KeyLanguage, DefaultLanguage); validLanguage(lang) {
		m.language = lang
	} else if lang != DefaultLanguage {
		log.Printf("Stored language %q is not supported, using %q", lang, DefaultLanguage)
	}

	if theme := m.loadString(ctx, kvstore.KeyTheme, DefaultTheme); validTheme(theme) {
		m.theme = theme
	} else if theme != DefaultTheme {
		log.Printf("Stored theme %q is not supported, using %q", theme, DefaultTheme)
	}

	return m
}

func (m *Manager) loadString(ctx context.Context, key, fallback string) string {
	data, err := m.kv.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			log.Printf("Failed to load %s, using default: %v", key, err)
		}
		return fallback
	}
	return string(data)
}

// CurrentUserID returns the signed-in user's id, or "" when signed out.
func (m *Manager) CurrentUserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentUserID
}

func (m *Manager) SetCurrentUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	m.currentUserID = userID
	m.mu.Unlock()

	return m.kv.Save(ctx, kvstore.KeyCurrentUser, []byte(userID))
}

func (m *Manager) ClearCurrentUser(ctx context.Context) error {
	m.mu.Lock()
	m.currentUserID = ""
	m.mu.Unlock()

	if err := m.kv.Remove(ctx, kvstore.KeyCurrentUser); err != nil && !errors.Is(err, kvstore.ErrKeyNotFound) {
		return err
	}
	return nil
}

func (m *Manager) Language() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.language
}

func (m *Manager) SetLanguage(ctx context.Context, code string) error {
	if !validLanguage(code) {
		return ErrUnknownLanguage
	}

	m.mu.Lock()
	m.language = code
	m.mu.Unlock()

	return m.kv.Save(ctx, kvstore.KeyLanguage, []byte(code))
}

func (m *Manager) Theme() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func (m *Manager) SetTheme(ctx context.Context, theme string) error {
	if !validTheme(theme) {
		return ErrUnknownTheme
	}

	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()

	return m.kv.Save(ctx, kvstore.KeyTheme, []byte(theme))
}

// Translate resolves a UI string in the session's current language.
func (m *Manager) Translate(key string) string {
	return Translate(m.Language(), key)
}

func validTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
