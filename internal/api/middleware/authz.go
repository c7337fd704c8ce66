package middleware

import (
	"net/http"

	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/authz"
)

// Require returns middleware that consults the authorization policy for
// the given action and rejects disallowed roles with 403.
func Require(action authz.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			identity := GetIdentity(r.Context())
			if identity == nil {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", requestID)
				return
			}

			if !authz.Allowed(identity.Role, action) {
				response.Err(w, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
