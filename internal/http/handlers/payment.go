package handlers

import (
	"errors"
	"net/http"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/logx"
)

// PaymentHandler serves the mock card payment endpoint.
type PaymentHandler struct {
	logger logx.Logger
	uc     paymentUsecase
}

// NewPaymentHandler wires a paymentUsecase into HTTP handlers.
func NewPaymentHandler(logger logx.Logger, uc paymentUsecase) *PaymentHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &PaymentHandler{logger: logger, uc: uc}
}

// Pay handles POST /pay-mock. A declined card is still 200 with status "declined".
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.uc.Pay(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, payToResponse(res))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid card number")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
