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
	"board-srv/internal/user/repository"
)

const userColumns = "id, username, password_hash, role, is_blocked, created_at, last_login"

func scanUser(row interface{ Scan(...interface{}) error }) (model.User, error) {
	var u model.User
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.IsBlocked, &u.CreatedAt, &lastLogin)
	if err != nil {
		return model.User{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}

// CreateUser inserts a user. A username collision maps to ErrDuplicate.
func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO users (id, username, password_hash, role, is_blocked, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id, opt.Username, opt.PasswordHash, opt.Role, now))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.User{}, repository.ErrDuplicate
		}
		return model.User{}, fmt.Errorf("CreateUser: %w", err)
	}

	return u, nil
}

// GetUserByID returns one user.
func (r *implRepository) GetUserByID(ctx context.Context, id string) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByUsername returns one user by exact username.
func (r *implRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

// ListUsers returns all users, oldest registration first.
func (r *implRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers scan: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// UpdatePassword replaces the stored password hash.
func (r *implRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2 WHERE id = $1`, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("UpdatePassword: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateLastLogin records a successful login.
func (r *implRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = $2 WHERE id = $1`, userID, at)
	if err != nil {
		return fmt.Errorf("UpdateLastLogin: %w", err)
	}
	return nil
}

// SetBlocked flips the blocked flag and returns the updated user.
func (r *implRepository) SetBlocked(ctx context.Context, userID string, blocked bool) (model.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users SET is_blocked = $2 WHERE id = $1 RETURNING `+userColumns,
		userID, blocked))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("SetBlocked: %w", err)
	}
	return u, nil
}

// DeleteUser removes an account. Their posts and comments cascade.
func (r *implRepository) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountUsers counts users under the given constraints.
func (r *implRepository) CountUsers(ctx context.Context, opt repository.CountUsersOptions) (int64, error) {
	query := `SELECT COUNT(*) FROM users WHERE 1=1`
	var args []interface{}
	if opt.BlockedOnly {
		query += ` AND is_blocked = true`
	}
	if !opt.LastLoginSince.IsZero() {
		args = append(args, opt.LastLoginSince)
		query += fmt.Sprintf(" AND last_login >= $%d", len(args))
	}
	if !opt.RegisteredBefore.IsZero() {
		args = append(args, opt.RegisteredBefore)
		query += fmt.Sprintf(" AND created_at < $%d", len(args))
	}

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}
