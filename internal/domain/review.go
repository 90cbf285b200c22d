package domain

import "time"

// Review is a product review.
type Review struct {
	ID        int64
	ProductID string
	Rating    int
	Text      string
	Author    string
	CreatedAt time.Time
}
