//go:generate mockgen -source=contracts.go -destination=reviews_mocks_test.go -package=reviews

package reviews

import (
	"context"

	"vibe-shop/internal/domain"
)

// reviewRepository stores reviews. ListReviews returns newest first.
type reviewRepository interface {
	CreateReview(ctx context.Context, r *domain.Review) (int64, error)
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
}
