//go:generate mockgen -source=contracts.go -destination=auth_mocks_test.go -package=auth

package auth

import (
	"context"

	"vibe-shop/internal/domain"
)

// userRepository stores accounts. CreateUser returns apperr.ErrConflict for a
// taken username; lookups return (nil, nil) when nothing matches.
type userRepository interface {
	CreateUser(ctx context.Context, u *domain.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	HasAdmin(ctx context.Context) (bool, error)
}
