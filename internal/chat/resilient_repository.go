package chat

import (
	"context"

	"github.com/edventure-park/community-api/internal/store"
)

// ResilientRepository serves from the primary repository and degrades to
// the fallback when the primary is unavailable.
type ResilientRepository struct {
	primary  Repository
	fallback Repository
	deg      *store.Degrader
}

// NewResilientRepository wires a primary and fallback repository together.
func NewResilientRepository(primary, fallback Repository, deg *store.Degrader) Repository {
	return &ResilientRepository{primary: primary, fallback: fallback, deg: deg}
}

func (r *ResilientRepository) ListChannels(ctx context.Context) ([]Channel, error) {
	return store.Attempt(ctx, r.deg, "listChannels",
		func(ctx context.Context) ([]Channel, error) { return r.primary.ListChannels(ctx) },
		func(ctx context.Context) ([]Channel, error) { return r.fallback.ListChannels(ctx) })
}

func (r *ResilientRepository) GetChannel(ctx context.Context, id string) (*Channel, error) {
	return store.Attempt(ctx, r.deg, "getChannel",
		func(ctx context.Context) (*Channel, error) { return r.primary.GetChannel(ctx, id) },
		func(ctx context.Context) (*Channel, error) { return r.fallback.GetChannel(ctx, id) })
}

func (r *ResilientRepository) CreateChannel(ctx context.Context, ch *Channel) error {
	return store.AttemptErr(ctx, r.deg, "createChannel",
		func(ctx context.Context) error { return r.primary.CreateChannel(ctx, ch) },
		func(ctx context.Context) error { return r.fallback.CreateChannel(ctx, ch) })
}

func (r *ResilientRepository) SetChannelPreview(ctx context.Context, channelID, lastMessage, lastMessageTime string) error {
	return store.AttemptErr(ctx, r.deg, "setChannelPreview",
		func(ctx context.Context) error {
			return r.primary.SetChannelPreview(ctx, channelID, lastMessage, lastMessageTime)
		},
		func(ctx context.Context) error {
			return r.fallback.SetChannelPreview(ctx, channelID, lastMessage, lastMessageTime)
		})
}

func (r *ResilientRepository) ListMessages(ctx context.Context, channelID string) ([]Message, error) {
	return store.Attempt(ctx, r.deg, "listMessages",
		func(ctx context.Context) ([]Message, error) { return r.primary.ListMessages(ctx, channelID) },
		func(ctx context.Context) ([]Message, error) { return r.fallback.ListMessages(ctx, channelID) })
}

func (r *ResilientRepository) CreateMessage(ctx context.Context, m *Message) error {
	return store.AttemptErr(ctx, r.deg, "createMessage",
		func(ctx context.Context) error { return r.primary.CreateMessage(ctx, m) },
		func(ctx context.Context) error { return r.fallback.CreateMessage(ctx, m) })
}

func (r *ResilientRepository) ToggleStar(ctx context.Context, channelID, messageID string) (*Message, error) {
	return store.Attempt(ctx, r.deg, "toggleStar",
		func(ctx context.Context) (*Message, error) { return r.primary.ToggleStar(ctx, channelID, messageID) },
		func(ctx context.Context) (*Message, error) { return r.fallback.ToggleStar(ctx, channelID, messageID) })
}

func (r *ResilientRepository) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return store.AttemptErr(ctx, r.deg, "deleteMessage",
		func(ctx context.Context) error { return r.primary.DeleteMessage(ctx, channelID, messageID) },
		func(ctx context.Context) error { return r.fallback.DeleteMessage(ctx, channelID, messageID) })
}
