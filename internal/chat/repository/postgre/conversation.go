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

func scanConversation(row interface{ Scan(...interface{}) error }) (model.Conversation, error) {
	var c model.Conversation
	var last sql.NullTime
	if err := row.Scan(&c.ID, &c.UserAID, &c.UserBID, &c.CreatedAt, &last); err != nil {
		return model.Conversation{}, err
	}
	if last.Valid {
		t := last.Time
		c.LastMessageAt = &t
	}
	return c, nil
}

// GetOrCreateConversation finds the conversation between two users or
// creates it. Participants are stored in sorted order so each pair has a
// single row regardless of who messaged first.
func (r *implRepository) GetOrCreateConversation(ctx context.Context, userAID, userBID string) (model.Conversation, error) {
	if userBID < userAID {
		userAID, userBID = userBID, userAID
	}

	query := `
		SELECT id, user_a_id, user_b_id, created_at, last_message_at
		FROM conversations
		WHERE user_a_id = $1 AND user_b_id = $2
	`
	c, err := scanConversation(r.db.QueryRowContext(ctx, query, userAID, userBID))
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Conversation{}, fmt.Errorf("GetOrCreateConversation: %w", err)
	}

	insert := `
		INSERT INTO conversations (id, user_a_id, user_b_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_a_id, user_b_id) DO UPDATE SET user_a_id = EXCLUDED.user_a_id
		RETURNING id, user_a_id, user_b_id, created_at, last_message_at
	`
	c, err = scanConversation(r.db.QueryRowContext(ctx, insert,
		uuid.New().String(), userAID, userBID, time.Now()))
	if err != nil {
		return model.Conversation{}, fmt.Errorf("GetOrCreateConversation insert: %w", err)
	}

	return c, nil
}

// GetConversationByID returns one conversation.
func (r *implRepository) GetConversationByID(ctx context.Context, id string) (model.Conversation, error) {
	query := `
		SELECT id, user_a_id, user_b_id, created_at, last_message_at
		FROM conversations
		WHERE id = $1
	`
	c, err := scanConversation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Conversation{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Conversation{}, fmt.Errorf("GetConversationByID: %w", err)
	}
	return c, nil
}

// ListConversations returns the user's conversations, most recent message
// first; never-used conversations sort by creation time.
func (r *implRepository) ListConversations(ctx context.Context, userID string) ([]model.Conversation, error) {
	query := `
		SELECT id, user_a_id, user_b_id, created_at, last_message_at
		FROM conversations
		WHERE user_a_id = $1 OR user_b_id = $1
		ORDER BY COALESCE(last_message_at, created_at) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ListConversations: %w", err)
	}
	defer rows.Close()

	var out []model.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, fmt.Errorf("ListConversations scan: %w", err)
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// DeleteConversation removes a conversation; its messages go with it via
// the ON DELETE CASCADE on messages.conversation_id.
func (r *implRepository) DeleteConversation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteConversation: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// TouchConversation bumps last_message_at to now.
func (r *implRepository) TouchConversation(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE conversations SET last_message_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("TouchConversation: %w", err)
	}
	return nil
}
