package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/user"
)

func TestAuthFlow_RegisterMeLogin(t *testing.T) {
	router := newTestRouter(t)

	token := registerAs(t, router, "alice@edventurepark.com", user.RoleTeam)

	w := do(t, router, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	me := data(t, w)
	assert.Equal(t, "alice@edventurepark.com", me["email"])
	assert.Equal(t, "team", me["role"])

	w = do(t, router, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "alice@edventurepark.com",
		"password": "hunter22",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, data(t, w)["access_token"])
}

func TestProfileFlow_UpdateAndReload(t *testing.T) {
	router := newTestRouter(t)
	token := registerAs(t, router, "lead@edventurepark.com", user.RoleCampusLead)

	w := do(t, router, http.MethodPut, "/api/profile", map[string]any{
		"bio":    "Campus lead at IIT Hyderabad",
		"skills": []string{"Community", "Events"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	updated := data(t, w)
	assert.Equal(t, "Campus lead at IIT Hyderabad", updated["bio"])

	w = do(t, router, http.MethodGet, "/api/profile", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	reloaded := data(t, w)
	assert.Equal(t, "Campus lead at IIT Hyderabad", reloaded["bio"])
	assert.Equal(t, []interface{}{"Community", "Events"}, reloaded["skills"])
	assert.Equal(t, "Test User", reloaded["name"], "unset fields survive the update")
}

func TestProfileUpdate_CannotChangeEmailOrRole(t *testing.T) {
	router := newTestRouter(t)
	token := registerAs(t, router, "lead2@edventurepark.com", user.RoleCampusLead)

	w := do(t, router, http.MethodPut, "/api/profile", map[string]any{
		"email": "someone-else@edventurepark.com",
		"role":  "team",
		"name":  "New Name",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	d := data(t, w)
	assert.Equal(t, "lead2@edventurepark.com", d["email"])
	assert.Equal(t, "campus_lead", d["role"])
	assert.Equal(t, "New Name", d["name"])
}
