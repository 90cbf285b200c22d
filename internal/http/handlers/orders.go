package handlers

import (
	"errors"
	"net/http"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/logx"
	"vibe-shop/internal/service/auth"
)

// OrdersHandler serves delivery estimates, checkout and order listings.
type OrdersHandler struct {
	logger logx.Logger
	uc     ordersUsecase
}

// NewOrdersHandler wires an ordersUsecase into HTTP handlers.
func NewOrdersHandler(logger logx.Logger, uc ordersUsecase) *OrdersHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrdersHandler{logger: logger, uc: uc}
}

// DeliveryEta handles POST /delivery-eta.
func (h *OrdersHandler) DeliveryEta(w http.ResponseWriter, r *http.Request) {
	var req etaRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	items, origin := req.toModel()
	writeJSON(h.logger, w, r, http.StatusOK, etaToResponse(h.uc.DeliveryEta(items, origin)))
}

// Checkout handles POST /checkout. A valid bearer token attaches the order to its user.
func (h *OrdersHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	var username *string
	if p, ok := auth.PrincipalFrom(r.Context()); ok {
		username = &p.Username
	}

	res, err := h.uc.Checkout(r.Context(), req.toModel(username))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, checkoutToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "cart is empty")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// MyOrders handles GET /my-orders.
func (h *OrdersHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		writeError(h.logger, w, r, http.StatusUnauthorized, "not authenticated")
		return
	}

	list, err := h.uc.MyOrders(r.Context(), p.Username)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, userOrdersToResponse(list))
	case errors.Is(err, apperr.ErrUnauthorized):
		writeError(h.logger, w, r, http.StatusUnauthorized, "not authenticated")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// AdminOrders handles GET /admin/orders.
func (h *OrdersHandler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.AdminOrders(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// AdminPayments handles GET /admin/payments.
func (h *OrdersHandler) AdminPayments(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.AdminPayments(r.Context())
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, paymentsToResponse(list))
}
