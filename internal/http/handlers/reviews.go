package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/logx"
)

// ReviewsHandler serves product reviews.
type ReviewsHandler struct {
	logger logx.Logger
	uc     reviewsUsecase
}

// NewReviewsHandler wires a reviewsUsecase into HTTP handlers.
func NewReviewsHandler(logger logx.Logger, uc reviewsUsecase) *ReviewsHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &ReviewsHandler{logger: logger, uc: uc}
}

// List handles GET /reviews/{product_id}.
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context(), chi.URLParam(r, "product_id"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, reviewsToResponse(list))
}

// Add handles POST /reviews/{product_id}.
func (h *ReviewsHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	rev, err := h.uc.Add(r.Context(), chi.URLParam(r, "product_id"), req.Rating, req.Text, req.Author)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, reviewToResponse(*rev))
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid review")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
