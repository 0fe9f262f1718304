// internal/users/repository.go
// In-memory user collection with JSON snapshots to the key-value store

package users

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/aviato-app/aviato-backend/internal/common/store"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Create(ctx context.Context, user *User) error
	// Update applies mutate to the stored record under the writer lock
	// and snapshots the collection afterwards
	Update(ctx context.Context, id string, mutate func(*User) error) (*User, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	order []string
	users map[string]*User
	kv    store.KVStore
}

// NewRepository builds the user collection from the persisted snapshot,
// falling back to seed data when the snapshot is absent or unreadable.
func NewRepository(kv store.KVStore) Repository {
	repo := &memoryRepository{
		users: make(map[string]*User),
		kv:    kv,
	}

	loaded := repo.loadSnapshot()
	if loaded == nil {
		loaded = SeedUsers()
	}

	for _, u := range loaded {
		migrate(u)
		repo.users[u.ID] = u
		repo.order = append(repo.order, u.ID)
	}

	return repo
}

// loadSnapshot returns nil when seed data should be used instead
func (r *memoryRepository) loadSnapshot() []*User {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	raw, err := r.kv.Load(ctx, store.KeyUsers)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Printf("users: failed to load snapshot, using seed data: %v", err)
		}
		return nil
	}

	var loaded []*User
	if err := json.Unmarshal(raw, &loaded); err != nil {
		log.Printf("users: malformed snapshot, using seed data: %v", err)
		return nil
	}
	if len(loaded) == 0 {
		return nil
	}

	return loaded
}

// migrate repairs records written by older snapshots
func migrate(u *User) {
	if u.Reviews == nil {
		u.Reviews = []Review{}
	}
	if u.Selections == nil {
		u.Selections = []string{}
	}
	if u.Availability != nil {
		if err := u.Availability.Validate(); err != nil {
			log.Printf("users: dropping invalid availability settings for %s: %v", u.ID, err)
			u.Availability = nil
		}
	}
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, copyUser(r.users[id]))
	}
	return out, nil
}

func (r *memoryRepository) Create(ctx context.Context, user *User) error {
	r.mu.Lock()
	if _, exists := r.users[user.ID]; exists {
		r.mu.Unlock()
		return ErrUserExists
	}

	stored := copyUser(user)
	migrate(stored)
	r.users[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	r.mu.Unlock()

	r.snapshot()
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, id string, mutate func(*User) error) (*User, error) {
	r.mu.Lock()
	user, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return nil, ErrUserNotFound
	}

	if err := mutate(user); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	updated := copyUser(user)
	r.mu.Unlock()

	r.snapshot()
	return updated, nil
}

// snapshot persists the collection fire-and-forget; persistence is
// best-effort and last-write-wins
func (r *memoryRepository) snapshot() {
	r.mu.RLock()
	all := make([]*User, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.users[id])
	}
	raw, err := json.Marshal(all)
	r.mu.RUnlock()

	if err != nil {
		log.Printf("users: failed to marshal snapshot: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.kv.Save(ctx, store.KeyUsers, raw); err != nil {
			log.Printf("users: failed to save snapshot: %v", err)
		}
	}()
}

func copyUser(u *User) *User {
	out := *u

	out.Selections = append([]string(nil), u.Selections...)
	out.Reviews = append([]Review(nil), u.Reviews...)

	if u.Availability != nil {
		settings := *u.Availability
		if u.Availability.Scheduled != nil {
			v := *u.Availability.Scheduled
			settings.Scheduled = &v
		}
		if u.Availability.Delayed != nil {
			v := *u.Availability.Delayed
			settings.Delayed = &v
		}
		if u.Availability.Capped != nil {
			v := *u.Availability.Capped
			settings.Capped = &v
		}
		if u.Availability.Timed != nil {
			v := *u.Availability.Timed
			settings.Timed = &v
		}
		out.Availability = &settings
	}

	return &out
}
