package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"vibe-shop/internal/domain"
)

// PaymentRepo represents payment repository.
type PaymentRepo struct{ db *pgxpool.Pool }

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(db *pgxpool.Pool) *PaymentRepo { return &PaymentRepo{db: db} }

// CreatePayment - stores a payment attempt.
func (r *PaymentRepo) CreatePayment(ctx context.Context, p *domain.Payment) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments(order_id, status, amount, card_last4, card_brand, transaction_id, created_at)
		VALUES($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		p.OrderID, p.Status, p.Amount, p.CardLast4, p.CardBrand, p.TransactionID, p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create payment for %s: %w", p.OrderID, err)
	}
	return id, nil
}

// ListPayments - returns all payments, newest first.
func (r *PaymentRepo) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, status, amount, card_last4, card_brand, transaction_id, created_at
		FROM payments ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Status, &p.Amount, &p.CardLast4,
			&p.CardBrand, &p.TransactionID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
