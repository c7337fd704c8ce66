package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/api/handler"
	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/chat"
	"github.com/edventure-park/community-api/internal/user"
)

func newChatRouter(t *testing.T) (*chi.Mux, func(role user.Role) string) {
	t.Helper()

	issuer, err := auth.NewTokenIssuer("test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	svc := auth.NewService(user.NewMemoryRepository(), issuer, testBcryptCost)

	chatSvc := chat.NewService(chat.NewMemoryRepository(chat.ChannelFixtures(), chat.MessageFixtures()))
	h := handler.NewChatHandler(chatSvc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(svc))
		r.Route("/api/messages", func(r chi.Router) {
			r.Get("/channels", h.ListChannels)
			r.Post("/channels", h.CreateChannel)
			r.Get("/{channelId}", h.ListMessages)
			r.Post("/{channelId}", h.SendMessage)
			r.Put("/{channelId}/{messageId}/star", h.ToggleStar)
			r.Delete("/{channelId}/{messageId}", h.DeleteMessage)
		})
	})

	tokenFor := func(role user.Role) string {
		_, token, err := svc.Register(context.Background(), auth.RegisterParams{
			Email:    string(role) + "@edventurepark.com",
			Password: "hunter22",
			Name:     "Someone",
			Role:     role,
		})
		require.NoError(t, err)
		return token
	}
	return r, tokenFor
}

func TestListChannels_RoleFiltered(t *testing.T) {
	router, tokenFor := newChatRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/messages/channels", nil, tokenFor(user.RoleTeam))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseEnvelope(t, w)["data"].([]interface{}), 5)

	w = doJSON(t, router, http.MethodGet, "/api/messages/channels", nil, tokenFor(user.RoleCampusLead))
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].([]interface{})
	require.Len(t, data, 3)
	for _, item := range data {
		assert.NotEqual(t, "team", item.(map[string]interface{})["type"])
	}
}

func TestCreateChannel_Created(t *testing.T) {
	router, tokenFor := newChatRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/messages/channels", map[string]any{
		"name": "EVP W26 Coordinators",
		"type": "general",
	}, tokenFor(user.RoleTeam))

	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "general", data["type"])
}

func TestCreateChannel_UnknownType(t *testing.T) {
	router, tokenFor := newChatRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/messages/channels", map[string]any{
		"name": "Secret",
		"type": "hidden",
	}, tokenFor(user.RoleTeam))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestListMessages_UnknownChannel(t *testing.T) {
	router, tokenFor := newChatRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/messages/999", nil, tokenFor(user.RoleTeam))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(t, w))
}

func TestSendMessage_RoleDefaultsToCaller(t *testing.T) {
	router, tokenFor := newChatRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/messages/2", map[string]any{
		"sender":  "Priya",
		"content": "Registration closes Friday.",
	}, tokenFor(user.RoleCampusLead))

	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "campus_lead", data["role"])
	assert.Equal(t, "2", data["channel_id"])
	assert.NotEmpty(t, data["timestamp"])
}

func TestSendMessage_NoContentOrFile(t *testing.T) {
	router, tokenFor := newChatRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/messages/2", map[string]any{
		"sender": "Priya",
	}, tokenFor(user.RoleCampusLead))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestToggleStar_FlipsFlag(t *testing.T) {
	router, tokenFor := newChatRouter(t)
	token := tokenFor(user.RoleTeam)

	w := doJSON(t, router, http.MethodPut, "/api/messages/2/1/star", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, true, data["starred"])

	w = doJSON(t, router, http.MethodPut, "/api/messages/2/1/star", nil, token)
	data = parseEnvelope(t, w)["data"].(map[string]interface{})
	assert.Equal(t, false, data["starred"])
}

func TestDeleteMessage_MissingIsNoOp(t *testing.T) {
	router, tokenFor := newChatRouter(t)
	token := tokenFor(user.RoleTeam)

	w := doJSON(t, router, http.MethodDelete, "/api/messages/2/1", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/messages/2/1", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code, "delete is idempotent")
}
