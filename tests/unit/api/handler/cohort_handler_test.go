package handler_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/api/handler"
	"github.com/edventure-park/community-api/internal/cohort"
)

func newCohortRouter(seed []cohort.Cohort) *chi.Mux {
	h := handler.NewCohortHandler(cohort.NewMemoryRepository(seed))

	r := chi.NewRouter()
	r.Route("/api/cohorts", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.GetByID)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
	return r
}

func cohortBody() map[string]any {
	return map[string]any{
		"name":       "EVP W26",
		"program":    "Pre-Incubation",
		"status":     "Planning",
		"start_date": "2026-01-15",
		"end_date":   "2026-04-30",
		"milestones": []string{"Ideation", "Prototyping"},
	}
}

func TestCohortList_Seeded(t *testing.T) {
	router := newCohortRouter(cohort.Fixtures())

	w := doJSON(t, router, http.MethodGet, "/api/cohorts", nil, "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].([]interface{})
	require.Len(t, data, 3)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "EVP A25", first["name"])
}

func TestCohortGetByID_NotFound(t *testing.T) {
	router := newCohortRouter(nil)

	w := doJSON(t, router, http.MethodGet, "/api/cohorts/999", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestCohortCreate_AssignsIDAndTimestamps(t *testing.T) {
	router := newCohortRouter(nil)

	w := doJSON(t, router, http.MethodPost, "/api/cohorts", cohortBody(), "")

	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.NotEmpty(t, data["created_at"])
	assert.Equal(t, "EVP W26", data["name"])
}

func TestCohortCreate_ValidationError(t *testing.T) {
	router := newCohortRouter(nil)

	body := cohortBody()
	delete(body, "name")
	w := doJSON(t, router, http.MethodPost, "/api/cohorts", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestCohortUpdate_ReplacesFields(t *testing.T) {
	router := newCohortRouter(cohort.Fixtures())

	body := cohortBody()
	body["name"] = "EVP A25 Extended"
	body["progress"] = 80
	w := doJSON(t, router, http.MethodPut, "/api/cohorts/1", body, "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "1", data["id"])
	assert.Equal(t, "EVP A25 Extended", data["name"])
	assert.Equal(t, float64(80), data["progress"])
}

func TestCohortUpdate_NotFound(t *testing.T) {
	router := newCohortRouter(nil)

	w := doJSON(t, router, http.MethodPut, "/api/cohorts/999", cohortBody(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCohortDelete_NoContent(t *testing.T) {
	router := newCohortRouter(cohort.Fixtures())

	w := doJSON(t, router, http.MethodDelete, "/api/cohorts/1", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(t, router, http.MethodDelete, "/api/cohorts/1", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
