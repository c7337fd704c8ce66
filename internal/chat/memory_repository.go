package chat

import (
	"context"

	"github.com/edventure-park/community-api/internal/store"
)

// MemoryRepository implements Repository on in-process collections. The
// message collection's insertion order doubles as per-channel chronology.
type MemoryRepository struct {
	channels *store.Collection[Channel]
	messages *store.Collection[Message]
}

// NewMemoryRepository creates an in-memory chat store, optionally
// pre-seeded with fixture channels and messages.
func NewMemoryRepository(seedChannels []Channel, seedMessages []Message) *MemoryRepository {
	r := &MemoryRepository{
		channels: store.NewCollection(func(ch Channel) string { return ch.ID }),
		messages: store.NewCollection(func(m Message) string { return m.ID }),
	}
	for _, ch := range seedChannels {
		r.channels.Insert(ch)
	}
	for _, m := range seedMessages {
		r.messages.Insert(m)
	}
	return r
}

// ListChannels returns all channels in insertion order.
func (r *MemoryRepository) ListChannels(_ context.Context) ([]Channel, error) {
	return r.channels.List(nil), nil
}

// GetChannel retrieves a single channel by id.
func (r *MemoryRepository) GetChannel(_ context.Context, id string) (*Channel, error) {
	ch, ok := r.channels.Get(id)
	if !ok {
		return nil, ErrChannelNotFound
	}
	return &ch, nil
}

// CreateChannel inserts a new channel record.
func (r *MemoryRepository) CreateChannel(_ context.Context, ch *Channel) error {
	r.channels.Insert(*ch)
	return nil
}

// SetChannelPreview overwrites the denormalized last-message fields.
func (r *MemoryRepository) SetChannelPreview(_ context.Context, channelID, lastMessage, lastMessageTime string) error {
	_, ok := r.channels.Update(channelID, func(ch Channel) Channel {
		ch.LastMessage = lastMessage
		ch.LastMessageTime = lastMessageTime
		return ch
	})
	if !ok {
		return ErrChannelNotFound
	}
	return nil
}

// ListMessages returns a channel's messages in chronological append order.
func (r *MemoryRepository) ListMessages(_ context.Context, channelID string) ([]Message, error) {
	return r.messages.List(func(m Message) bool { return m.ChannelID == channelID }), nil
}

// CreateMessage appends a message to its channel's history.
func (r *MemoryRepository) CreateMessage(_ context.Context, m *Message) error {
	r.messages.Insert(*m)
	return nil
}

// ToggleStar flips the starred flag in place and returns the updated message.
func (r *MemoryRepository) ToggleStar(_ context.Context, channelID, messageID string) (*Message, error) {
	existing, ok := r.messages.Get(messageID)
	if !ok || existing.ChannelID != channelID {
		return nil, ErrMessageNotFound
	}

	updated, ok := r.messages.Update(messageID, func(m Message) Message {
		m.Starred = !m.Starred
		return m
	})
	if !ok {
		return nil, ErrMessageNotFound
	}
	return &updated, nil
}

// DeleteMessage removes a message from its channel. Deleting an id that is
// not present is a no-op.
func (r *MemoryRepository) DeleteMessage(_ context.Context, channelID, messageID string) error {
	r.messages.DeleteWhere(func(m Message) bool {
		return m.ID == messageID && m.ChannelID == channelID
	})
	return nil
}
