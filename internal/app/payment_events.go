package app

import (
	"context"
	"errors"
	"time"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
	"vibe-shop/internal/transport/kafka"
)

type paymentEventHandler interface {
	Handle(ctx context.Context, e domain.PaymentEvent) error
}

// makePaymentEvents bounds every event by timeout. Invalid events are not retried.
func makePaymentEvents(h paymentEventHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, e domain.PaymentEvent) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		err := h.Handle(ctx, e)
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}
