package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edventure-park/community-api/internal/api/middleware"
	"github.com/edventure-park/community-api/internal/api/response"
	"github.com/edventure-park/community-api/internal/api/validation"
	"github.com/edventure-park/community-api/internal/chat"
)

type channelRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type channelResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Unread          int    `json:"unread"`
	LastMessage     string `json:"last_message"`
	LastMessageTime string `json:"last_message_time"`
	Online          bool   `json:"online"`
	Typing          bool   `json:"typing"`
	CreatedAt       string `json:"created_at"`
}

type messageRequest struct {
	Sender    string  `json:"sender"`
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	FileName  *string `json:"file_name"`
	FileType  *string `json:"file_type"`
	FileURL   *string `json:"file_url"`
	ReplyToID *string `json:"reply_to_id"`
}

type messageResponse struct {
	ID        string  `json:"id"`
	ChannelID string  `json:"channel_id"`
	Sender    string  `json:"sender"`
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	Timestamp string  `json:"timestamp"`
	Time      string  `json:"time"`
	Date      string  `json:"date"`
	Read      bool    `json:"read"`
	Starred   bool    `json:"starred"`
	FileName  *string `json:"file_name"`
	FileType  *string `json:"file_type"`
	FileURL   *string `json:"file_url"`
	ReplyToID *string `json:"reply_to_id"`
}

func toChannelResponse(ch *chat.Channel) channelResponse {
	return channelResponse{
		ID:              ch.ID,
		Name:            ch.Name,
		Type:            ch.Type,
		Unread:          ch.Unread,
		LastMessage:     ch.LastMessage,
		LastMessageTime: ch.LastMessageTime,
		Online:          ch.Online,
		Typing:          ch.Typing,
		CreatedAt:       ch.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func toMessageResponse(m *chat.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Sender:    m.Sender,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Time:      m.Time,
		Date:      m.Date,
		Read:      m.Read,
		Starred:   m.Starred,
		FileName:  m.FileName,
		FileType:  m.FileType,
		FileURL:   m.FileURL,
		ReplyToID: m.ReplyToID,
	}
}

// ChatHandler handles channel and message endpoints.
type ChatHandler struct {
	svc *chat.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// ListChannels handles GET /api/messages/channels. The result is filtered
// by the caller's role.
func (h *ChatHandler) ListChannels(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	channels, err := h.svc.ListChannels(r.Context(), identity.Role)
	if err != nil {
		slog.Error("failed to list channels", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list channels", requestID)
		return
	}

	items := make([]channelResponse, 0, len(channels))
	for i := range channels {
		items = append(items, toChannelResponse(&channels[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// CreateChannel handles POST /api/messages/channels.
func (h *ChatHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req channelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateChannelRequest(validation.ChannelRequest{
		Name: req.Name,
		Type: req.Type,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	ch, err := h.svc.CreateChannel(r.Context(), req.Name, req.Type)
	if err != nil {
		slog.Error("failed to create channel", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create channel", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toChannelResponse(ch), requestID)
}

// ListMessages handles GET /api/messages/{channelId}.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	messages, err := h.svc.ListMessages(r.Context(), chi.URLParam(r, "channelId"))
	if err != nil {
		if errors.Is(err, chat.ErrChannelNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Channel not found", requestID)
			return
		}
		slog.Error("failed to list messages", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list messages", requestID)
		return
	}

	items := make([]messageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, toMessageResponse(&messages[i]))
	}

	response.Success(w, http.StatusOK, items, requestID)
}

// SendMessage handles POST /api/messages/{channelId}.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	identity := middleware.GetIdentity(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	var fileURL string
	if req.FileURL != nil {
		fileURL = *req.FileURL
	}
	fieldErrors := validation.ValidateMessageRequest(validation.MessageRequest{
		Sender:  req.Sender,
		Content: req.Content,
		FileURL: fileURL,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	role := req.Role
	if role == "" {
		role = string(identity.Role)
	}

	m, err := h.svc.SendMessage(r.Context(), chi.URLParam(r, "channelId"), chat.SendMessageInput{
		Sender:    req.Sender,
		Role:      role,
		Content:   req.Content,
		FileName:  req.FileName,
		FileType:  req.FileType,
		FileURL:   req.FileURL,
		ReplyToID: req.ReplyToID,
	})
	if err != nil {
		if errors.Is(err, chat.ErrChannelNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Channel not found", requestID)
			return
		}
		slog.Error("failed to send message", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send message", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toMessageResponse(m), requestID)
}

// ToggleStar handles PUT /api/messages/{channelId}/{messageId}/star.
func (h *ChatHandler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	m, err := h.svc.ToggleStar(r.Context(), chi.URLParam(r, "channelId"), chi.URLParam(r, "messageId"))
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrChannelNotFound):
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Channel not found", requestID)
		case errors.Is(err, chat.ErrMessageNotFound):
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Message not found", requestID)
		default:
			slog.Error("failed to toggle star", "error", err)
			response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle star", requestID)
		}
		return
	}

	response.Success(w, http.StatusOK, toMessageResponse(m), requestID)
}

// DeleteMessage handles DELETE /api/messages/{channelId}/{messageId}.
// Deleting a message id that is not present in an existing channel is a
// no-op success.
func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	err := h.svc.DeleteMessage(r.Context(), chi.URLParam(r, "channelId"), chi.URLParam(r, "messageId"))
	if err != nil {
		if errors.Is(err, chat.ErrChannelNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Channel not found", requestID)
			return
		}
		slog.Error("failed to delete message", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete message", requestID)
		return
	}

	response.NoContent(w)
}
