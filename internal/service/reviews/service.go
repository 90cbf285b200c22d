package reviews

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
)

// DefaultAuthor signs reviews posted without a name.
const DefaultAuthor = "Гость"

const (
	minRating = 1
	maxRating = 5
)

// Service stores product reviews.
type Service struct {
	repo             reviewRepository
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a reviews Service.
func NewService(repo reviewRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: repo, operationTimeout: timeout, now: time.Now}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// List returns reviews of a product, newest first.
func (s *Service) List(ctx context.Context, productID string) ([]domain.Review, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListReviews(ctx, productID)
}

// Add stores a review. The rating is clamped to [1,5].
func (s *Service) Add(ctx context.Context, productID string, rating int, text string, author *string) (*domain.Review, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("%w: product id required", apperr.ErrInvalid)
	}
	r := &domain.Review{
		ProductID: productID,
		Rating:    clampRating(rating),
		Text:      text,
		Author:    DefaultAuthor,
		CreatedAt: s.now().UTC(),
	}
	if author != nil && *author != "" {
		r.Author = *author
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.repo.CreateReview(ctx, r)
	if err != nil {
		return nil, err
	}
	r.ID = id
	return r, nil
}

func clampRating(r int) int {
	return max(minRating, min(r, maxRating))
}
