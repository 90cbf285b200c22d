package handlers

import (
	"vibe-shop/internal/domain"
	"vibe-shop/internal/service/orders"
)

func itemsToModel(items []itemDTO) []domain.OrderItem {
	out := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.OrderItem{ID: it.ID, Name: it.Name, Price: it.Price, Qty: it.Qty})
	}
	return out
}

func geoOf(lat, lon *float64) *domain.Coordinates {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Coordinates{Latitude: *lat, Longitude: *lon}
}

func (r etaRequest) toModel() ([]domain.CartItem, *domain.Coordinates) {
	return domain.ToCartItems(itemsToModel(r.Items)), geoOf(r.GeoLat, r.GeoLon)
}

func (r checkoutRequest) toModel(username *string) orders.CheckoutRequest {
	return orders.CheckoutRequest{
		Address:  r.Address,
		Items:    itemsToModel(r.Items),
		Geo:      geoOf(r.GeoLat, r.GeoLon),
		Username: username,
	}
}

func (r payRequest) toModel() domain.PayRequest {
	return domain.PayRequest{
		OrderID:    r.OrderID,
		CardNumber: r.CardNumber,
		ExpMonth:   r.ExpMonth,
		ExpYear:    r.ExpYear,
		Name:       r.Name,
	}
}

func userToResponse(u domain.User) userDTO {
	return userDTO{ID: u.ID, Username: u.Username, Role: u.Role}
}

func etaToResponse(e domain.EtaResult) etaResponse {
	return etaResponse{DistanceKm: e.DistanceKm, EtaDays: e.Days, EtaDate: e.Date}
}

func checkoutToResponse(res orders.CheckoutResult) checkoutResponse {
	out := checkoutResponse{OrderID: res.OrderID, Amount: res.Amount}
	if res.Eta != nil {
		days, date, km := res.Eta.Days, res.Eta.Date, res.Eta.DistanceKm
		out.EtaDays, out.EtaDate, out.DistanceKm = &days, &date, &km
	}
	return out
}

func payToResponse(res domain.PayResult) payResponse {
	return payResponse{
		Status:        res.Status,
		Message:       res.Message,
		TransactionID: res.TransactionID,
		DeliveryTime:  res.DeliveryTime,
	}
}

func nonNilItems(items []domain.OrderItem) []domain.OrderItem {
	if items == nil {
		return []domain.OrderItem{}
	}
	return items
}

func userOrdersToResponse(list []domain.UserOrder) []myOrderDTO {
	out := make([]myOrderDTO, 0, len(list))
	for _, o := range list {
		dto := myOrderDTO{
			OrderID:   o.OrderID,
			Address:   o.Address,
			Amount:    o.Amount,
			CreatedAt: o.CreatedAt,
			Items:     nonNilItems(o.Items),
			Status:    o.Status,
			EtaDays:   o.EtaDays,
			EtaDate:   o.EtaDate,
		}
		if p := o.LastPayment; p != nil {
			status, last4, brand, at := string(p.Status), p.CardLast4, string(p.CardBrand), p.CreatedAt
			dto.PaymentStatus, dto.PaymentCardLast4, dto.PaymentCardBrand, dto.PaymentCreatedAt = &status, &last4, &brand, &at
		}
		out = append(out, dto)
	}
	return out
}

func ordersToResponse(list []domain.Order) []adminOrderDTO {
	out := make([]adminOrderDTO, 0, len(list))
	for _, o := range list {
		dto := adminOrderDTO{
			OrderID:   o.OrderID,
			Address:   o.Address,
			Items:     nonNilItems(o.Items),
			Amount:    o.Amount,
			CreatedAt: o.CreatedAt,
			Username:  o.Username,
			Status:    o.Status,
		}
		if o.Geo != nil {
			lat, lon := o.Geo.Latitude, o.Geo.Longitude
			dto.GeoLat, dto.GeoLon = &lat, &lon
		}
		out = append(out, dto)
	}
	return out
}

func paymentsToResponse(list []domain.Payment) []adminPaymentDTO {
	out := make([]adminPaymentDTO, 0, len(list))
	for _, p := range list {
		out = append(out, adminPaymentDTO{
			OrderID:       p.OrderID,
			Status:        p.Status,
			Amount:        p.Amount,
			CardLast4:     p.CardLast4,
			CardBrand:     p.CardBrand,
			TransactionID: p.TransactionID,
			CreatedAt:     p.CreatedAt,
		})
	}
	return out
}

func reviewToResponse(r domain.Review) reviewDTO {
	return reviewDTO{
		ID:        r.ID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Text:      r.Text,
		Author:    r.Author,
		CreatedAt: r.CreatedAt,
	}
}

func reviewsToResponse(list []domain.Review) []reviewDTO {
	out := make([]reviewDTO, 0, len(list))
	for _, r := range list {
		out = append(out, reviewToResponse(r))
	}
	return out
}
