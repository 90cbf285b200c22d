package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vibe-shop/internal/domain"
)

// ReviewRepo represents review repository.
type ReviewRepo struct{ db *pgxpool.Pool }

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(db *pgxpool.Pool) *ReviewRepo { return &ReviewRepo{db: db} }

// CreateReview - stores a review.
func (r *ReviewRepo) CreateReview(ctx context.Context, rv *domain.Review) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews(product_id, rating, text, author, created_at)
		VALUES($1,$2,$3,$4,$5) RETURNING id`,
		rv.ProductID, rv.Rating, rv.Text, rv.Author, rv.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create review for %s: %w", rv.ProductID, err)
	}
	return id, nil
}

// ListReviews - returns reviews of a product, newest first.
func (r *ReviewRepo) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, rating, text, COALESCE(author, ''), created_at
		FROM reviews WHERE product_id=$1 ORDER BY id DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews of %s: %w", productID, err)
	}
	defer rows.Close()

	out := make([]domain.Review, 0)
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.Rating, &rv.Text, &rv.Author, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
