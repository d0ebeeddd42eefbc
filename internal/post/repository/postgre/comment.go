package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"board-srv/internal/model"
	"board-srv/internal/post/repository"
)

// CreateComment inserts a comment and returns it.
func (r *implRepository) CreateComment(ctx context.Context, opt repository.CreateCommentOptions) (model.Comment, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO comments (id, post_id, user_id, username, text, is_deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING id, post_id, user_id, username, text, is_deleted, created_at
	`

	var c model.Comment
	err := r.db.QueryRowContext(ctx, query,
		id, opt.PostID, opt.UserID, opt.Username, opt.Text, now,
	).Scan(&c.ID, &c.PostID, &c.UserID, &c.Username, &c.Text, &c.IsDeleted, &c.CreatedAt)
	if err != nil {
		return model.Comment{}, fmt.Errorf("CreateComment: %w", err)
	}

	return c, nil
}

// GetCommentByID returns one comment, deleted or not.
func (r *implRepository) GetCommentByID(ctx context.Context, id string) (model.Comment, error) {
	query := `
		SELECT id, post_id, user_id, username, text, is_deleted, created_at
		FROM comments
		WHERE id = $1
	`

	var c model.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PostID, &c.UserID, &c.Username, &c.Text, &c.IsDeleted, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comment{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("GetCommentByID: %w", err)
	}

	return c, nil
}

// SoftDeleteComment marks a comment deleted. The row stays so the thread
// keeps its shape; display and search skip it.
func (r *implRepository) SoftDeleteComment(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE comments SET is_deleted = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("SoftDeleteComment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountComments counts live comments, optionally only recent ones.
func (r *implRepository) CountComments(ctx context.Context, opt repository.CountCommentsOptions) (int64, error) {
	query := `SELECT COUNT(*) FROM comments WHERE is_deleted = false`
	var args []interface{}
	if !opt.Since.IsZero() {
		query += ` AND created_at >= $1`
		args = append(args, opt.Since)
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountComments: %w", err)
	}
	return n, nil
}

// listCommentsByPostIDs loads the comment threads for a set of posts in one
// query, keyed by post ID. Includes soft-deleted rows; callers filter.
func (r *implRepository) listCommentsByPostIDs(ctx context.Context, postIDs []string) (map[string][]model.Comment, error) {
	query := `
		SELECT id, post_id, user_id, username, text, is_deleted, created_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(postIDs))
	if err != nil {
		return nil, fmt.Errorf("listCommentsByPostIDs: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]model.Comment, len(postIDs))
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Username, &c.Text, &c.IsDeleted, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("listCommentsByPostIDs scan: %w", err)
		}
		out[c.PostID] = append(out[c.PostID], c)
	}

	return out, rows.Err()
}
