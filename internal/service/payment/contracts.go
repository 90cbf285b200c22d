//go:generate mockgen -source=contracts.go -destination=payment_mocks_test.go -package=payment

package payment

import (
	"context"

	"vibe-shop/internal/domain"
)

// paymentRepository persists payment attempts.
type paymentRepository interface {
	CreatePayment(ctx context.Context, p *domain.Payment) (int64, error)
}

// orderReader loads the order being paid. A missing order is (nil, nil).
type orderReader interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}

// etaEstimator recomputes the delivery date of a paid order.
type etaEstimator interface {
	Estimate(items []domain.CartItem, origin *domain.Coordinates) domain.EtaResult
}

// eventPublisher announces stored payments to the worker.
type eventPublisher interface {
	PublishPayment(ctx context.Context, e domain.PaymentEvent) error
}
