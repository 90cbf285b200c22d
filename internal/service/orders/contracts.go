//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders

package orders

import (
	"context"

	"vibe-shop/internal/domain"
)

// orderRepository stores orders. GetOrder returns (nil, nil) for unknown ids.
type orderRepository interface {
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListUserOrders(ctx context.Context, username string) ([]domain.UserOrder, error)
}

// paymentLister reads stored payments, newest first.
type paymentLister interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// statusRepository applies payment outcomes to orders.
type statusRepository interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	MarkPaid(ctx context.Context, orderID string, etaDays int, etaDate string) (bool, error)
	SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) (bool, error)
}

// etaEstimator computes delivery estimates.
type etaEstimator interface {
	Estimate(items []domain.CartItem, origin *domain.Coordinates) domain.EtaResult
}
