package auth

import "github.com/edventure-park/community-api/internal/user"

// Identity is the caller resolved from a validated token, stored in the
// request context after authentication.
type Identity struct {
	UserID string
	Email  string
	Role   user.Role
}
