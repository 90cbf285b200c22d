package orders

import (
	"context"
	"strings"

	"vibe-shop/internal/domain"
)

type actionFunc func(context.Context, domain.PaymentEvent) error

type actionFactory struct {
	byStatus map[domain.PaymentStatus]actionFunc
}

func newActionFactory(onSucceeded, onDeclined actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[domain.PaymentStatus]actionFunc{
			domain.PaymentSucceeded: onSucceeded,
			domain.PaymentDeclined:  onDeclined,
		},
	}
}

func (f *actionFactory) get(status domain.PaymentStatus) (actionFunc, bool) {
	status = domain.PaymentStatus(strings.ToLower(strings.TrimSpace(string(status))))
	fn, ok := f.byStatus[status]
	return fn, ok
}
