package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/edventure-park/community-api/internal/authz"
	"github.com/edventure-park/community-api/internal/user"
)

// Service implements the chat flows on top of a Repository: role-filtered
// channel listing and the coupled message-send side effect.
type Service struct {
	repo Repository
}

// NewService creates a chat Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListChannels returns the channels visible to the given role. Team-only
// channels are filtered out for campus leads at read time.
func (s *Service) ListChannels(ctx context.Context, role user.Role) ([]Channel, error) {
	channels, err := s.repo.ListChannels(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		if authz.CanSeeChannel(role, ch.Type) {
			visible = append(visible, ch)
		}
	}
	return visible, nil
}

// CreateChannel creates a channel with zeroed display state.
func (s *Service) CreateChannel(ctx context.Context, name, channelType string) (*Channel, error) {
	ch := &Channel{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      channelType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateChannel(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// ListMessages returns a channel's history in chronological order.
// Returns ErrChannelNotFound when the channel does not exist.
func (s *Service) ListMessages(ctx context.Context, channelID string) ([]Message, error) {
	if _, err := s.repo.GetChannel(ctx, channelID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, channelID)
}

// SendMessageInput carries the caller-supplied fields of a new message.
type SendMessageInput struct {
	Sender    string
	Role      string
	Content   string
	FileName  *string
	FileType  *string
	FileURL   *string
	ReplyToID *string
}

// SendMessage appends a message to the channel's history and overwrites
// the channel's last-message preview. The two writes are not transactional;
// a failure between them leaves the preview stale, never the history.
func (s *Service) SendMessage(ctx context.Context, channelID string, in SendMessageInput) (*Message, error) {
	if _, err := s.repo.GetChannel(ctx, channelID); err != nil {
		return nil, err
	}

	now := time.Now()
	m := &Message{
		ID:        uuid.NewString(),
		ChannelID: channelID,
		Sender:    in.Sender,
		Role:      in.Role,
		Content:   in.Content,
		Timestamp: now.Format("03:04 PM"),
		Time:      now.Format("15:04"),
		Date:      now.Format("2006-01-02"),
		FileName:  in.FileName,
		FileType:  in.FileType,
		FileURL:   in.FileURL,
		ReplyToID: in.ReplyToID,
	}

	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	if err := s.repo.SetChannelPreview(ctx, channelID, m.Content, m.Timestamp); err != nil {
		return nil, err
	}

	return m, nil
}

// ToggleStar flips a message's starred flag. Two toggles restore the
// original value.
func (s *Service) ToggleStar(ctx context.Context, channelID, messageID string) (*Message, error) {
	if _, err := s.repo.GetChannel(ctx, channelID); err != nil {
		return nil, err
	}
	return s.repo.ToggleStar(ctx, channelID, messageID)
}

// DeleteMessage removes a message from an existing channel. A missing
// message id is a no-op to keep delete idempotent; a missing channel is
// ErrChannelNotFound.
func (s *Service) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if _, err := s.repo.GetChannel(ctx, channelID); err != nil {
		return err
	}
	return s.repo.DeleteMessage(ctx, channelID, messageID)
}
