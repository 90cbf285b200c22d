package orders

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
	"vibe-shop/internal/logx"
)

const createAttempts = 3

// CheckoutRequest is a cart submitted for ordering.
type CheckoutRequest struct {
	Address  string
	Items    []domain.OrderItem
	Geo      *domain.Coordinates
	Username *string
}

// CheckoutResult describes a placed order. Eta is set only when the buyer sent coordinates.
type CheckoutResult struct {
	OrderID string
	Amount  int64
	Eta     *domain.EtaResult
}

// Service places and lists orders.
type Service struct {
	repo             orderRepository
	payments         paymentLister
	estimator        etaEstimator
	logger           logx.Logger
	etaDays          prometheus.Observer
	operationTimeout time.Duration
	now              func() time.Time
	suffix           func() int
}

// NewService creates an orders Service. etaDays may be nil.
func NewService(repo orderRepository, payments paymentLister, estimator etaEstimator,
	logger logx.Logger, etaDays prometheus.Observer, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		payments:         payments,
		estimator:        estimator,
		logger:           logger,
		etaDays:          etaDays,
		operationTimeout: timeout,
		now:              time.Now,
		suffix:           func() int { return 100 + rand.Intn(900) },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// DeliveryEta estimates delivery of items to origin.
func (s *Service) DeliveryEta(items []domain.CartItem, origin *domain.Coordinates) domain.EtaResult {
	res := s.estimator.Estimate(items, origin)
	s.observe(res)
	return res
}

// Checkout stores a new order. An empty cart is apperr.ErrInvalid.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	if len(req.Items) == 0 {
		return CheckoutResult{}, fmt.Errorf("%w: cart is empty", apperr.ErrInvalid)
	}

	var amount int64
	for _, it := range req.Items {
		amount += it.Price * int64(it.Qty)
	}

	o := domain.Order{
		Address:   strings.TrimSpace(req.Address),
		Items:     req.Items,
		Amount:    amount,
		CreatedAt: s.now().UTC(),
		Geo:       req.Geo,
		Username:  req.Username,
		Status:    domain.OrderStatusNew,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var err error
	for i := 0; i < createAttempts; i++ {
		o.OrderID = s.newOrderID()
		err = s.repo.CreateOrder(ctx, &o)
		if !errors.Is(err, apperr.ErrConflict) {
			break
		}
	}
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("create order: %w", err)
	}

	res := CheckoutResult{OrderID: o.OrderID, Amount: amount}
	if req.Geo != nil {
		eta := s.DeliveryEta(o.CartItems(), req.Geo)
		res.Eta = &eta
	}

	s.logger.Info("order placed",
		logx.String("order_id", o.OrderID),
		logx.Int64("amount", amount),
		logx.Int("items", len(o.Items)),
	)
	return res, nil
}

// MyOrders lists orders placed by username with their latest payment.
func (s *Service) MyOrders(ctx context.Context, username string) ([]domain.UserOrder, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperr.ErrUnauthorized
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListUserOrders(ctx, username)
}

// AdminOrders lists all orders, newest first.
func (s *Service) AdminOrders(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOrders(ctx)
}

// AdminPayments lists all payments, newest first.
func (s *Service) AdminPayments(ctx context.Context) ([]domain.Payment, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.payments.ListPayments(ctx)
}

func (s *Service) newOrderID() string {
	return fmt.Sprintf("ORD-%d-%d", s.now().Unix(), s.suffix())
}

func (s *Service) observe(res domain.EtaResult) {
	if s.etaDays != nil {
		s.etaDays.Observe(float64(res.Days))
	}
}
