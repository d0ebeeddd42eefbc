package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"board-srv/internal/model"
	"board-srv/internal/post/repository"
)

// CreatePost inserts a post and returns it.
func (r *implRepository) CreatePost(ctx context.Context, opt repository.CreatePostOptions) (model.Post, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO posts (id, user_id, username, content, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, user_id, username, content, category, created_at, updated_at
	`

	var p model.Post
	err := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.Username, opt.Content, opt.Category, now,
	).Scan(&p.ID, &p.UserID, &p.Username, &p.Content, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Post{}, fmt.Errorf("CreatePost: %w", err)
	}

	return p, nil
}

// GetPostByID returns one post with its full comment thread.
func (r *implRepository) GetPostByID(ctx context.Context, id string) (model.Post, error) {
	query := `
		SELECT id, user_id, username, content, category, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var p model.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.UserID, &p.Username, &p.Content, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("GetPostByID: %w", err)
	}

	comments, err := r.listCommentsByPostIDs(ctx, []string{p.ID})
	if err != nil {
		return model.Post{}, err
	}
	p.Comments = comments[p.ID]

	return p, nil
}

// ListPosts returns posts newest first, each with its comment thread.
func (r *implRepository) ListPosts(ctx context.Context, opt repository.ListPostsOptions) ([]model.Post, error) {
	query := `
		SELECT id, user_id, username, content, category, created_at, updated_at
		FROM posts
		WHERE 1=1
	`
	var args []interface{}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if opt.Category != "" {
		args = append(args, opt.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer rows.Close()

	var posts []model.Post
	var ids []string
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.Content, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListPosts scan: %w", err)
		}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPosts rows: %w", err)
	}

	if len(ids) == 0 {
		return posts, nil
	}

	comments, err := r.listCommentsByPostIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].Comments = comments[posts[i].ID]
	}

	return posts, nil
}

// UpdatePost updates content and/or category. Empty fields keep the stored
// value.
func (r *implRepository) UpdatePost(ctx context.Context, opt repository.UpdatePostOptions) (model.Post, error) {
	query := `
		UPDATE posts
		SET content = COALESCE(NULLIF($2, ''), content),
		    category = COALESCE(NULLIF($3, ''), category),
		    updated_at = $4
		WHERE id = $1
		RETURNING id, user_id, username, content, category, created_at, updated_at
	`

	var p model.Post
	err := r.db.QueryRowContext(ctx, query, opt.PostID, opt.Content, opt.Category, time.Now()).Scan(
		&p.ID, &p.UserID, &p.Username, &p.Content, &p.Category, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Post{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("UpdatePost: %w", err)
	}

	return p, nil
}

// DeletePost removes a post. Comments go with it via ON DELETE CASCADE.
func (r *implRepository) DeletePost(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeletePost: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountPosts counts posts, optionally only those created since a time.
func (r *implRepository) CountPosts(ctx context.Context, opt repository.CountPostsOptions) (int64, error) {
	query := `SELECT COUNT(*) FROM posts`
	var args []interface{}
	if !opt.Since.IsZero() {
		query += ` WHERE created_at >= $1`
		args = append(args, opt.Since)
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountPosts: %w", err)
	}
	return n, nil
}
