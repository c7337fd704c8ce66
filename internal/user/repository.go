package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when a user with the same email already
// exists. Email comparison is case-insensitive.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository provides operations on the user directory.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*User, error)
}
