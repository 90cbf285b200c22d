package handlers

import (
	"context"

	"vibe-shop/internal/domain"
	"vibe-shop/internal/service/auth"
	"vibe-shop/internal/service/catalog"
	"vibe-shop/internal/service/orders"
	"vibe-shop/internal/service/payment"
	"vibe-shop/internal/service/reviews"
)

type authUsecase interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context, token string) (*domain.User, error)
}

// NewAuthUsecase wires an auth Service into an authUsecase.
func NewAuthUsecase(svc *auth.Service) authUsecase {
	return svc
}

type ordersUsecase interface {
	DeliveryEta(items []domain.CartItem, origin *domain.Coordinates) domain.EtaResult
	Checkout(ctx context.Context, req orders.CheckoutRequest) (orders.CheckoutResult, error)
	MyOrders(ctx context.Context, username string) ([]domain.UserOrder, error)
	AdminOrders(ctx context.Context) ([]domain.Order, error)
	AdminPayments(ctx context.Context) ([]domain.Payment, error)
}

// NewOrdersUsecase wires an orders Service into an ordersUsecase.
func NewOrdersUsecase(svc *orders.Service) ordersUsecase {
	return svc
}

type paymentUsecase interface {
	Pay(ctx context.Context, req domain.PayRequest) (domain.PayResult, error)
}

// NewPaymentUsecase wires a payment Service into a paymentUsecase.
func NewPaymentUsecase(svc *payment.Service) paymentUsecase {
	return svc
}

type catalogUsecase interface {
	Products(ctx context.Context) ([]catalog.Record, error)
	AdminProducts(ctx context.Context) ([]catalog.AdminProduct, error)
	UpdateProduct(ctx context.Context, index int, patch catalog.ProductPatch) error
	SaveImages(ctx context.Context, pid int64, files []catalog.Upload, replace bool) ([]string, error)
	DeleteImages(ctx context.Context, pid int64) (int, error)
	DeleteImage(ctx context.Context, pid int64, filename string) error
}

// NewCatalogUsecase wires a catalog Service into a catalogUsecase.
func NewCatalogUsecase(svc *catalog.Service) catalogUsecase {
	return svc
}

type reviewsUsecase interface {
	List(ctx context.Context, productID string) ([]domain.Review, error)
	Add(ctx context.Context, productID string, rating int, text string, author *string) (*domain.Review, error)
}

// NewReviewsUsecase wires a reviews Service into a reviewsUsecase.
func NewReviewsUsecase(svc *reviews.Service) reviewsUsecase {
	return svc
}
