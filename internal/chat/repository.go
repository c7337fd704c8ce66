package chat

import (
	"context"
	"errors"
)

// ErrChannelNotFound is returned when a channel record is not found.
var ErrChannelNotFound = errors.New("channel not found")

// ErrMessageNotFound is returned when a message record is not found.
var ErrMessageNotFound = errors.New("message not found")

// Repository provides storage for channels and their message histories.
// Message history per channel is chronological append order and is never
// reordered. DeleteMessage on an id absent from the channel is a no-op.
type Repository interface {
	ListChannels(ctx context.Context) ([]Channel, error)
	GetChannel(ctx context.Context, id string) (*Channel, error)
	CreateChannel(ctx context.Context, ch *Channel) error
	SetChannelPreview(ctx context.Context, channelID, lastMessage, lastMessageTime string) error

	ListMessages(ctx context.Context, channelID string) ([]Message, error)
	CreateMessage(ctx context.Context, m *Message) error
	ToggleStar(ctx context.Context, channelID, messageID string) (*Message, error)
	DeleteMessage(ctx context.Context, channelID, messageID string) error
}
