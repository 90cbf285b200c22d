package kafka

import (
	"strings"
	"time"

	"vibe-shop/internal/domain"
)

// PaymentEventDTO is the wire form of domain.PaymentEvent.
type PaymentEventDTO struct {
	PaymentID     int64     `json:"payment_id"`
	OrderID       string    `json:"order_id"`
	Status        string    `json:"status"`
	Brand         string    `json:"brand"`
	Amount        int64     `json:"amount"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromDomain converts a domain event for publishing.
func FromDomain(e domain.PaymentEvent) PaymentEventDTO {
	return PaymentEventDTO{
		PaymentID:     e.PaymentID,
		OrderID:       e.OrderID,
		Status:        string(e.Status),
		Brand:         string(e.Brand),
		Amount:        e.Amount,
		TransactionID: e.TransactionID,
		CreatedAt:     e.CreatedAt,
	}
}

// ToDomain converts PaymentEventDTO to domain.PaymentEvent
func ToDomain(dto PaymentEventDTO) domain.PaymentEvent {
	return domain.PaymentEvent{
		PaymentID:     dto.PaymentID,
		OrderID:       strings.TrimSpace(dto.OrderID),
		Status:        domain.PaymentStatus(strings.ToLower(strings.TrimSpace(dto.Status))),
		Brand:         domain.CardBrand(strings.TrimSpace(dto.Brand)),
		Amount:        dto.Amount,
		TransactionID: dto.TransactionID,
		CreatedAt:     dto.CreatedAt,
	}
}
