package orders

import (
	"context"
	"fmt"

	"vibe-shop/internal/domain"
	"vibe-shop/internal/logx"
)

// Processor applies payment events to orders
type Processor struct {
	repo      statusRepository
	estimator etaEstimator
	logger    logx.Logger
	factory   *actionFactory
}

// NewProcessor creates a Processor.
func NewProcessor(repo statusRepository, estimator etaEstimator, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		repo:      repo,
		estimator: estimator,
		logger:    logger,
	}
	p.factory = newActionFactory(p.onSucceeded, p.onDeclined)
	return p
}

// Handle processes a single payment event. Unknown statuses and orders are skipped.
func (p *Processor) Handle(ctx context.Context, e domain.PaymentEvent) error {
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("skip payment event", logx.String("status", string(e.Status)))
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onSucceeded(ctx context.Context, e domain.PaymentEvent) error {
	o, err := p.repo.GetOrder(ctx, e.OrderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", e.OrderID, err)
	}
	if o == nil {
		p.logger.Warn("paid order not found", logx.String("order_id", e.OrderID))
		return nil
	}
	eta := p.estimator.Estimate(o.CartItems(), o.Geo)
	if _, err := p.repo.MarkPaid(ctx, e.OrderID, eta.Days, eta.Date); err != nil {
		return fmt.Errorf("mark order %s paid: %w", e.OrderID, err)
	}
	return nil
}

func (p *Processor) onDeclined(ctx context.Context, e domain.PaymentEvent) error {
	ok, err := p.repo.SetStatus(ctx, e.OrderID, domain.OrderStatusPaymentDeclined)
	if err != nil {
		return fmt.Errorf("decline order %s: %w", e.OrderID, err)
	}
	if !ok {
		p.logger.Warn("declined order not found", logx.String("order_id", e.OrderID))
	}
	return nil
}
