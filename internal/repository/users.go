package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
)

// UserRepo represents user repository.
type UserRepo struct{ db *pgxpool.Pool }

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

// CreateUser - inserts a user, apperr.ErrConflict when the username is taken.
func (r *UserRepo) CreateUser(ctx context.Context, u *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO users(username, password_hash, role) VALUES($1,$2,$3) RETURNING id`,
		u.Username, u.PasswordHash, u.Role).Scan(&id)
	if err != nil {
		if IsDuplicate(err) {
			return 0, fmt.Errorf("%w: username already registered", apperr.ErrConflict)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetUserByUsername - returns the user or nil.
func (r *UserRepo) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, role FROM users WHERE username=$1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &u, nil
}

// HasAdmin - reports whether any admin account exists.
func (r *UserRepo) HasAdmin(ctx context.Context) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE role=$1)`, domain.RoleAdmin,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	return ok, nil
}
