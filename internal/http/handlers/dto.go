package handlers

import (
	"time"

	"vibe-shop/internal/domain"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userDTO struct {
	ID       int64       `json:"id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type itemDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Qty   int    `json:"qty"`
}

type etaRequest struct {
	GeoLat *float64  `json:"geo_lat" validate:"required"`
	GeoLon *float64  `json:"geo_lon" validate:"required"`
	Items  []itemDTO `json:"items" validate:"required"`
}

type etaResponse struct {
	DistanceKm int    `json:"distance_km"`
	EtaDays    int    `json:"eta_days"`
	EtaDate    string `json:"eta_date"`
}

type checkoutRequest struct {
	Address string    `json:"address"`
	Items   []itemDTO `json:"items" validate:"required"`
	GeoLat  *float64  `json:"geo_lat"`
	GeoLon  *float64  `json:"geo_lon"`
}

type checkoutResponse struct {
	OrderID    string  `json:"order_id"`
	Amount     int64   `json:"amount"`
	EtaDays    *int    `json:"eta_days"`
	EtaDate    *string `json:"eta_date"`
	DistanceKm *int    `json:"distance_km"`
}

type payRequest struct {
	OrderID    string `json:"order_id" validate:"required"`
	CardNumber string `json:"card_number" validate:"required"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	Name       string `json:"name"`
}

type payResponse struct {
	Status        domain.PaymentStatus `json:"status"`
	Message       string               `json:"message"`
	TransactionID *string              `json:"transaction_id"`
	DeliveryTime  string               `json:"delivery_time"`
}

type myOrderDTO struct {
	OrderID          string             `json:"order_id"`
	Address          string             `json:"address"`
	Amount           int64              `json:"amount"`
	CreatedAt        time.Time          `json:"created_at"`
	Items            []domain.OrderItem `json:"items"`
	Status           domain.OrderStatus `json:"status"`
	EtaDays          *int               `json:"eta_days"`
	EtaDate          *string            `json:"eta_date"`
	PaymentStatus    *string            `json:"payment_status"`
	PaymentCardLast4 *string            `json:"payment_card_last4"`
	PaymentCardBrand *string            `json:"payment_card_brand"`
	PaymentCreatedAt *time.Time         `json:"payment_created_at"`
}

type adminOrderDTO struct {
	OrderID   string             `json:"order_id"`
	Address   string             `json:"address"`
	Items     []domain.OrderItem `json:"items"`
	Amount    int64              `json:"amount"`
	CreatedAt time.Time          `json:"created_at"`
	GeoLat    *float64           `json:"geo_lat"`
	GeoLon    *float64           `json:"geo_lon"`
	Username  *string            `json:"username"`
	Status    domain.OrderStatus `json:"status"`
}

type adminPaymentDTO struct {
	OrderID       string               `json:"order_id"`
	Status        domain.PaymentStatus `json:"status"`
	Amount        int64                `json:"amount"`
	CardLast4     string               `json:"card_last4"`
	CardBrand     domain.CardBrand     `json:"card_brand"`
	TransactionID *string              `json:"transaction_id"`
	CreatedAt     time.Time            `json:"created_at"`
}

type reviewRequest struct {
	Rating int     `json:"rating"`
	Text   string  `json:"text"`
	Author *string `json:"author"`
}

type reviewDTO struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
