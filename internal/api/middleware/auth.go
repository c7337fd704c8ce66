package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/auth"
)

const identityKey contextKey = "identity"

// Authenticator resolves a raw bearer token to a caller identity.
type Authenticator interface {
	Authenticate(rawToken string) (*auth.Identity, error)
}

// Auth is middleware that extracts the bearer token from the Authorization
// header and resolves it to an Identity. Missing, invalid or expired
// tokens return 401 before any policy is consulted.
func Auth(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", requestID)
				return
			}

			identity, err := authn.Authenticate(token)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Token has expired", requestID)
					return
				}
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid authentication token", requestID)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the authenticated Identity from the request context.
func GetIdentity(ctx context.Context) *auth.Identity {
	if id, ok := ctx.Value(identityKey).(*auth.Identity); ok {
		return id
	}
	return nil
}
