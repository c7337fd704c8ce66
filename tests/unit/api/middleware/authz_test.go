package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/authz"
	"github.com/edventure-park/community-api/internal/user"
)

func issueTokenWithRole(t *testing.T, svc *auth.Service, role user.Role) string {
	t.Helper()
	_, token, err := svc.Register(context.Background(), auth.RegisterParams{
		Email:    string(role) + "@edventurepark.com",
		Password: "hunter22",
		Name:     "Someone",
		Role:     role,
	})
	require.NoError(t, err)
	return token
}

func TestRequire_NoIdentity(t *testing.T) {
	handler := middleware.Require(authz.ActionCohortCreate)(okHandler())
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequire_ForbiddenRole(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	token := issueTokenWithRole(t, svc, user.RoleCampusLead)

	handler := middleware.Auth(svc)(middleware.Require(authz.ActionCohortCreate)(okHandler()))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := parseErrorResponse(t, w)
	apiErr := env["error"].(map[string]interface{})
	assert.Equal(t, "FORBIDDEN", apiErr["code"])
	assert.Equal(t, "Insufficient permissions", apiErr["message"])
}

func TestRequire_AllowedRole(t *testing.T) {
	svc := newAuthService(t, time.Hour)
	token := issueTokenWithRole(t, svc, user.RoleTeam)

	handler := middleware.Auth(svc)(middleware.Require(authz.ActionCohortCreate)(okHandler()))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
