package user

import (
	"context"
	"strings"
	"sync"

	"github.com/edventure-park/community-api/internal/store"
)

// MemoryRepository implements Repository on an in-process collection. It is
// the fallback backend and also the sole backend in memory-only mode.
type MemoryRepository struct {
	mu    sync.Mutex // serializes the uniqueness check in Create
	users *store.Collection[User]
}

// NewMemoryRepository creates an empty in-memory user directory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: store.NewCollection(func(u User) string { return u.ID }),
	}
}

// Create inserts a new user, enforcing case-insensitive email uniqueness.
func (r *MemoryRepository) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	taken := r.users.List(func(existing User) bool {
		return strings.EqualFold(existing.Email, u.Email)
	})
	if len(taken) > 0 {
		return ErrDuplicateEmail
	}

	r.users.Insert(*u)
	return nil
}

// GetByID retrieves a single user by id.
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.users.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail retrieves a single user by email, case-insensitively.
func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	matches := r.users.List(func(u User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if len(matches) == 0 {
		return nil, ErrUserNotFound
	}
	u := matches[0]
	return &u, nil
}

// UpdateProfile applies the caller-writable fields of upd.
func (r *MemoryRepository) UpdateProfile(_ context.Context, id string, upd ProfileUpdate) (*User, error) {
	updated, ok := r.users.Update(id, func(u User) User {
		upd.Apply(&u)
		return u
	})
	if !ok {
		return nil, ErrUserNotFound
	}
	return &updated, nil
}
