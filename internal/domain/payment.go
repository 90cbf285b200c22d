package domain

import "time"

// PaymentStatus is the outcome of a payment attempt.
type PaymentStatus string

// List of payment statuses
const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentDeclined  PaymentStatus = "declined"
)

// Payment is a stored payment attempt.
type Payment struct {
	ID            int64
	OrderID       string
	Status        PaymentStatus
	Amount        int64
	CardLast4     string
	CardBrand     CardBrand
	TransactionID *string
	CreatedAt     time.Time
}

// PayRequest carries a mock card payment.
type PayRequest struct {
	OrderID    string
	CardNumber string
	ExpMonth   string
	ExpYear    string
	Name       string
}

// PayResult is returned to the payer.
type PayResult struct {
	Status        PaymentStatus
	Message       string
	TransactionID *string
	DeliveryTime  string
}

// PaymentEvent is published after every stored payment attempt.
type PaymentEvent struct {
	PaymentID     int64
	OrderID       string
	Status        PaymentStatus
	Brand         CardBrand
	Amount        int64
	TransactionID *string
	CreatedAt     time.Time
}
