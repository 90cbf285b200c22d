package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
	"vibe-shop/internal/logx"
)

// Result messages.
const (
	MessageSucceeded = "payment succeeded"
	MessageDeclined  = "payment declined"
)

// Deps groups the collaborators of Service. Publisher and the metric vectors are optional.
type Deps struct {
	Classifier *Classifier
	Policy     Policy
	Payments   paymentRepository
	Orders     orderReader
	Estimator  etaEstimator
	Publisher  eventPublisher
	Logger     logx.Logger

	// PaymentsTotal is labelled by status and brand.
	PaymentsTotal *prometheus.CounterVec
	// PublishFailures counts events that could not be published.
	PublishFailures prometheus.Counter

	Timeout time.Duration
}

// Service runs mock card payments.
type Service struct {
	classifier       *Classifier
	policy           Policy
	payments         paymentRepository
	orders           orderReader
	estimator        etaEstimator
	publisher        eventPublisher
	logger           logx.Logger
	paymentsTotal    *prometheus.CounterVec
	publishFailures  prometheus.Counter
	operationTimeout time.Duration
	now              func() time.Time
	newTxnID         func() string
}

// NewService creates a payment Service.
func NewService(d Deps) *Service {
	if d.Timeout <= 0 {
		d.Timeout = 3 * time.Second
	}
	if d.Classifier == nil {
		d.Classifier = NewClassifier(DefaultCardRules())
	}
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	return &Service{
		classifier:       d.Classifier,
		policy:           d.Policy,
		payments:         d.Payments,
		orders:           d.Orders,
		estimator:        d.Estimator,
		publisher:        d.Publisher,
		logger:           d.Logger,
		paymentsTotal:    d.PaymentsTotal,
		publishFailures:  d.PublishFailures,
		operationTimeout: d.Timeout,
		now:              time.Now,
		newTxnID:         func() string { return "TXN-" + uuid.NewString() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Pay classifies the card and stores the attempt. A number rejected by the
// policy returns apperr.ErrInvalid and nothing is stored.
func (s *Service) Pay(ctx context.Context, req domain.PayRequest) (domain.PayResult, error) {
	card := NormalizeNumber(req.CardNumber)
	cls := s.classifier.Classify(card)

	p := domain.Payment{
		OrderID:   req.OrderID,
		CardLast4: Last4(card),
		CardBrand: cls.Brand,
		CreatedAt: s.now().UTC(),
	}
	res := domain.PayResult{}

	switch {
	case cls.Brand == domain.BrandVisaDecline:
		p.Status = domain.PaymentDeclined
		res.Message = MessageDeclined
	case !s.policy.Acceptable(card, cls):
		s.count("rejected", cls.Brand)
		return domain.PayResult{}, fmt.Errorf("%w: invalid card number", apperr.ErrInvalid)
	default:
		txn := s.newTxnID()
		p.Status = domain.PaymentSucceeded
		p.TransactionID = &txn
		res.Message = MessageSucceeded
	}
	res.Status = p.Status
	res.TransactionID = p.TransactionID

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	order, err := s.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return domain.PayResult{}, fmt.Errorf("load order: %w", err)
	}
	if order != nil {
		p.Amount = order.Amount
	}

	id, err := s.payments.CreatePayment(ctx, &p)
	if err != nil {
		return domain.PayResult{}, fmt.Errorf("store payment: %w", err)
	}
	p.ID = id
	s.count(string(p.Status), p.CardBrand)

	var (
		items  []domain.CartItem
		origin *domain.Coordinates
	)
	if order != nil {
		items = order.CartItems()
		origin = order.Geo
	}
	res.DeliveryTime = s.estimator.Estimate(items, origin).Date

	s.publish(ctx, p)

	s.logger.Info("payment stored",
		logx.String("order_id", p.OrderID),
		logx.String("status", string(p.Status)),
		logx.String("brand", string(p.CardBrand)),
		logx.Int64("payment_id", p.ID),
	)
	return res, nil
}

func (s *Service) publish(ctx context.Context, p domain.Payment) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishPayment(ctx, domain.PaymentEvent{
		PaymentID:     p.ID,
		OrderID:       p.OrderID,
		Status:        p.Status,
		Brand:         p.CardBrand,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	})
	if err == nil {
		return
	}
	if s.publishFailures != nil {
		s.publishFailures.Inc()
	}
	s.logger.Warn("publish payment event failed",
		logx.String("order_id", p.OrderID),
		logx.Err(err),
	)
}

func (s *Service) count(status string, brand domain.CardBrand) {
	if s.paymentsTotal == nil {
		return
	}
	s.paymentsTotal.WithLabelValues(status, string(brand)).Inc()
}
