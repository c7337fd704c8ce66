package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edventure-park/community-api/internal/store"
)

const channelColumns = `id, name, type, unread, last_message, last_message_time, online, typing, created_at`

const messageColumns = `id, channel_id, sender, role, content, stamp, clock_time, sent_date,
       read, starred, file_name, file_type, file_url, reply_to_id`

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a Repository backed by the given connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// ListChannels retrieves all channels ordered by creation time.
func (r *PostgresRepository) ListChannels(ctx context.Context) ([]Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, store.MarkUnavailable("channels.list", fmt.Errorf("listing channels: %w", err))
	}
	defer rows.Close()

	channels := []Channel{}
	for rows.Next() {
		var ch Channel
		if err := scanChannel(rows, &ch); err != nil {
			return nil, store.MarkUnavailable("channels.list", fmt.Errorf("scanning channel row: %w", err))
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MarkUnavailable("channels.list", fmt.Errorf("iterating channel rows: %w", err))
	}

	return channels, nil
}

// GetChannel retrieves a single channel by id.
func (r *PostgresRepository) GetChannel(ctx context.Context, id string) (*Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE id = $1`

	var ch Channel
	err := scanChannel(r.pool.QueryRow(ctx, query, id), &ch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChannelNotFound
		}
		return nil, store.MarkUnavailable("channels.getById", fmt.Errorf("querying channel: %w", err))
	}

	return &ch, nil
}

// CreateChannel inserts a new channel record.
func (r *PostgresRepository) CreateChannel(ctx context.Context, ch *Channel) error {
	query := `
		INSERT INTO channels (` + channelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		ch.ID, ch.Name, ch.Type, ch.Unread, ch.LastMessage, ch.LastMessageTime,
		ch.Online, ch.Typing, ch.CreatedAt,
	)
	if err != nil {
		return store.MarkUnavailable("channels.insert", fmt.Errorf("inserting channel: %w", err))
	}

	return nil
}

// SetChannelPreview overwrites the denormalized last-message fields.
func (r *PostgresRepository) SetChannelPreview(ctx context.Context, channelID, lastMessage, lastMessageTime string) error {
	query := `UPDATE channels SET last_message = $2, last_message_time = $3 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, channelID, lastMessage, lastMessageTime)
	if err != nil {
		return store.MarkUnavailable("channels.setPreview", fmt.Errorf("updating channel preview: %w", err))
	}
	if result.RowsAffected() == 0 {
		return ErrChannelNotFound
	}

	return nil
}

// ListMessages retrieves a channel's messages in chronological append order.
func (r *PostgresRepository) ListMessages(ctx context.Context, channelID string) ([]Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE channel_id = $1 ORDER BY seq ASC`

	rows, err := r.pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, store.MarkUnavailable("messages.list", fmt.Errorf("listing messages: %w", err))
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		var m Message
		if err := scanMessage(rows, &m); err != nil {
			return nil, store.MarkUnavailable("messages.list", fmt.Errorf("scanning message row: %w", err))
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, store.MarkUnavailable("messages.list", fmt.Errorf("iterating message rows: %w", err))
	}

	return messages, nil
}

// CreateMessage appends a message to its channel's history.
func (r *PostgresRepository) CreateMessage(ctx context.Context, m *Message) error {
	query := `
		INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.ChannelID, m.Sender, m.Role, m.Content,
		m.Timestamp, m.Time, m.Date, m.Read, m.Starred,
		m.FileName, m.FileType, m.FileURL, m.ReplyToID,
	)
	if err != nil {
		return store.MarkUnavailable("messages.insert", fmt.Errorf("inserting message: %w", err))
	}

	return nil
}

// ToggleStar flips the starred flag in place and returns the updated message.
func (r *PostgresRepository) ToggleStar(ctx context.Context, channelID, messageID string) (*Message, error) {
	query := `
		UPDATE messages SET starred = NOT starred
		WHERE id = $1 AND channel_id = $2
		RETURNING ` + messageColumns

	var m Message
	err := scanMessage(r.pool.QueryRow(ctx, query, messageID, channelID), &m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, store.MarkUnavailable("messages.toggleStar", fmt.Errorf("toggling star: %w", err))
	}

	return &m, nil
}

// DeleteMessage removes a message from its channel. Deleting an id that is
// not present is a no-op.
func (r *PostgresRepository) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM messages WHERE id = $1 AND channel_id = $2`, messageID, channelID)
	if err != nil {
		return store.MarkUnavailable("messages.delete", fmt.Errorf("deleting message: %w", err))
	}

	return nil
}

func scanChannel(row pgx.Row, ch *Channel) error {
	return row.Scan(
		&ch.ID, &ch.Name, &ch.Type, &ch.Unread, &ch.LastMessage, &ch.LastMessageTime,
		&ch.Online, &ch.Typing, &ch.CreatedAt,
	)
}

func scanMessage(row pgx.Row, m *Message) error {
	return row.Scan(
		&m.ID, &m.ChannelID, &m.Sender, &m.Role, &m.Content,
		&m.Timestamp, &m.Time, &m.Date, &m.Read, &m.Starred,
		&m.FileName, &m.FileType, &m.FileURL, &m.ReplyToID,
	)
}
