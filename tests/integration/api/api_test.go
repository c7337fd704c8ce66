// Integration tests exercise the fully wired router in memory-only mode:
// the same configuration the server falls back to when no primary store
// is reachable.
package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/api"
	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/campuslead"
	"github.com/edventure-park/community-api/internal/chat"
	"github.com/edventure-park/community-api/internal/cohort"
	"github.com/edventure-park/community-api/internal/event"
	"github.com/edventure-park/community-api/internal/stats"
	"github.com/edventure-park/community-api/internal/user"
)

const testBcryptCost = 4

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	issuer, err := auth.NewTokenIssuer("integration-secret", "HS256", time.Hour)
	require.NoError(t, err)

	users := user.NewMemoryRepository()
	authSvc := auth.NewService(users, issuer, testBcryptCost)
	chatSvc := chat.NewService(chat.NewMemoryRepository(chat.ChannelFixtures(), chat.MessageFixtures()))

	return api.NewRouter(api.RouterDeps{
		Version:        "test",
		AllowedOrigins: []string{"*"},
		AuthService:    authSvc,
		Users:          users,
		Cohorts:        cohort.NewMemoryRepository(cohort.Fixtures()),
		CampusLeads:    campuslead.NewMemoryRepository(campuslead.Fixtures()),
		Chat:           chatSvc,
		Events:         event.NewMemoryRepository(),
		Stats:          stats.NewMemoryRepository(stats.Fixtures()),
	})
}

func do(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func data(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	d, ok := envelope(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response data is not an object: %s", w.Body.String())
	return d
}

func listData(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	d, ok := envelope(t, w)["data"].([]interface{})
	require.True(t, ok, "response data is not a list: %s", w.Body.String())
	return d
}

func registerAs(t *testing.T, router http.Handler, email string, role user.Role) string {
	t.Helper()

	w := do(t, router, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"password": "hunter22",
		"name":     "Test User",
		"role":     string(role),
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return data(t, w)["access_token"].(string)
}
