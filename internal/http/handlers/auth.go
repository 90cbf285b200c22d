package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/logx"
	"vibe-shop/internal/service/auth"
)

// AuthHandler serves registration, login and the current-user endpoint.
type AuthHandler struct {
	logger logx.Logger
	uc     authUsecase
}

// NewAuthHandler wires an authUsecase into HTTP handlers.
func NewAuthHandler(logger logx.Logger, uc authUsecase) *AuthHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &AuthHandler{logger: logger, uc: uc}
}

func (h *AuthHandler) unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(h.logger, w, r, http.StatusUnauthorized, msg)
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	u, err := h.uc.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, userToResponse(*u))
	case errors.Is(err, apperr.ErrConflict):
		writeError(h.logger, w, r, http.StatusBadRequest, "username already registered")
	case errors.Is(err, apperr.ErrInvalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "username and password required")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Token handles POST /token. Credentials come as a form or as JSON.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if ok := decodeJSON(h.logger, w, r, &req); !ok {
			return
		}
	} else {
		r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
		var err error
		if mediaType == "multipart/form-data" {
			err = r.ParseMultipartForm(bodyLimit)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid form")
			return
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
		if strings.TrimSpace(req.Username) == "" || req.Password == "" {
			writeError(h.logger, w, r, http.StatusUnprocessableEntity, "username and password required")
			return
		}
	}

	token, err := h.uc.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
	case errors.Is(err, apperr.ErrUnauthorized):
		h.unauthorized(w, r, "incorrect username or password")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Me handles GET /me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := auth.BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		h.unauthorized(w, r, "not authenticated")
		return
	}

	u, err := h.uc.Me(r.Context(), token)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, userToResponse(*u))
	case errors.Is(err, apperr.ErrUnauthorized):
		h.unauthorized(w, r, "invalid token")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "user not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
