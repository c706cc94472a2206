package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/uzmpro/event-panel-api/internal/models"
)

// UserRepository provides database access for panel logins.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns a user by exact, case-sensitive username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT user_id, username, password_hash, full_name, is_active FROM users WHERE username = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	const query = `SELECT user_id, username, password_hash, full_name, is_active FROM users WHERE user_id = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// List returns every panel user, newest first.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT user_id, username, password_hash, full_name, is_active FROM users ORDER BY user_id DESC`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create inserts a new user and returns the generated id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int, error) {
	const query = `INSERT INTO users (username, password_hash, full_name, is_active) VALUES ($1, $2, $3, $4) RETURNING user_id`
	var id int
	if err := r.db.GetContext(ctx, &id, query, user.Username, user.PasswordHash, user.FullName, user.IsActive); err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	user.ID = id
	return id, nil
}

// Update rewrites username, full name and the active flag. The password
// hash is only touched when a new one is supplied.
func (r *UserRepository) Update(ctx context.Context, user *models.User, newPasswordHash string) error {
	if newPasswordHash != "" {
		const query = `UPDATE users SET username = $2, full_name = $3, is_active = $4, password_hash = $5 WHERE user_id = $1`
		if _, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.FullName, user.IsActive, newPasswordHash); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	}

	const query = `UPDATE users SET username = $2, full_name = $3, is_active = $4 WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.FullName, user.IsActive); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user row. The protection of the main admin lives in the
// service, not here.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM users WHERE user_id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
