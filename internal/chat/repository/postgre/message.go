package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"board-srv/internal/chat/repository"
	"board-srv/internal/model"
)

// CreateMessage inserts a message.
func (r *implRepository) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (model.Message, error) {
	query := `
		INSERT INTO messages (id, conversation_id, sender_id, sender_username, text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, conversation_id, sender_id, sender_username, text, created_at
	`

	var m model.Message
	err := r.db.QueryRowContext(ctx, query,
		uuid.New().String(), opt.ConversationID, opt.SenderID, opt.SenderUsername, opt.Text, time.Now(),
	).Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderUsername, &m.Text, &m.CreatedAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("CreateMessage: %w", err)
	}

	return m, nil
}

// ListMessages returns a conversation's messages oldest first. With a
// positive limit only the newest N come back, still in ascending order.
func (r *implRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, sender_username, text, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC
	`
	if opt.Limit > 0 {
		query = fmt.Sprintf(`
			SELECT * FROM (
				SELECT id, conversation_id, sender_id, sender_username, text, created_at
				FROM messages
				WHERE conversation_id = $1
				ORDER BY created_at DESC
				LIMIT %d
			) recent ORDER BY created_at ASC
		`, opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, opt.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("ListMessages: %w", err)
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderUsername, &m.Text, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListMessages scan: %w", err)
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

// GetLastMessage returns the newest message of a conversation.
func (r *implRepository) GetLastMessage(ctx context.Context, conversationID string) (model.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, sender_username, text, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var m model.Message
	err := r.db.QueryRowContext(ctx, query, conversationID).Scan(
		&m.ID, &m.ConversationID, &m.SenderID, &m.SenderUsername, &m.Text, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Message{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Message{}, fmt.Errorf("GetLastMessage: %w", err)
	}

	return m, nil
}
