// internal/common/store/store.go
// Opaque key-value persistence for JSON snapshots

package store

import (
	"context"
	"errors"
)

// Snapshot keys used across the application
const (
	KeyCurrentUser   = "aviato_current_user"
	KeyUsers         = "aviato_users"
	KeyConversations = "aviato_conversations"
	KeyLanguage      = "aviato_language"
	KeyTheme         = "aviato_theme"
)

// ErrKeyNotFound is returned when a key has no stored value
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the durable key-value contract consumed by repositories.
// Values are JSON snapshots; callers tolerate absent keys by falling
// back to seed data.
type KVStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
