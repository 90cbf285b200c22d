package domain

import "time"

// OrderStatus is the lifecycle status of an order.
type OrderStatus string

// List of order statuses
const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusPaid            OrderStatus = "paid"
	OrderStatusPaymentDeclined OrderStatus = "payment_declined"
)

// OrderItem is a purchased product line.
type OrderItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

// Order is a placed order.
type Order struct {
	OrderID   string
	Address   string
	Items     []OrderItem
	Amount    int64
	CreatedAt time.Time
	Geo       *Coordinates
	Username  *string
	Status    OrderStatus
	EtaDays   *int
	EtaDate   *string
}

// CartItems projects order lines onto estimator input.
func (o Order) CartItems() []CartItem {
	return ToCartItems(o.Items)
}

// ToCartItems converts order lines into estimator cart items.
func ToCartItems(items []OrderItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, it := range items {
		out = append(out, CartItem{ID: it.ID, Quantity: it.Qty})
	}
	return out
}

// UserOrder is an order with its latest payment, if any.
type UserOrder struct {
	Order
	LastPayment *Payment
}
