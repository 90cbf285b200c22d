package middleware

import (
	"encoding/json"
	"net/http"

	"vibe-shop/internal/logx"
	"vibe-shop/internal/service/auth"
)

// Authenticator verifies bearer tokens.
type Authenticator interface {
	Authenticate(token string) (auth.Principal, error)
}

// Auth puts the bearer token holder into the request context.
type Auth struct {
	logger logx.Logger
	authn  Authenticator
}

// NewAuth creates an Auth middleware set.
func NewAuth(logger logx.Logger, authn Authenticator) *Auth {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Auth{logger: logger, authn: authn}
}

func (a *Auth) principal(r *http.Request) (auth.Principal, bool) {
	token := auth.BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return auth.Principal{}, false
	}
	p, err := a.authn.Authenticate(token)
	if err != nil {
		a.logger.Debug("bearer token rejected",
			logx.String("path", r.URL.Path),
			logx.Err(err),
		)
		return auth.Principal{}, false
	}
	return p, true
}

// OptionalUser attaches the caller when the request carries a valid token
// and passes anonymous requests through unchanged.
func (a *Auth) OptionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, ok := a.principal(r); ok {
			r = r.WithContext(auth.WithPrincipal(r.Context(), p))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects requests without a valid token with 401.
func (a *Auth) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := a.principal(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeJSONError(w, http.StatusUnauthorized, "could not validate credentials")
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}

// RequireAdmin is RequireUser plus a 403 for non-admin roles.
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, _ := auth.PrincipalFrom(r.Context())
		if !p.IsAdmin() {
			a.logger.Warn("admin access denied",
				logx.String("username", p.Username),
				logx.String("path", r.URL.Path),
			)
			writeJSONError(w, http.StatusForbidden, "admin only")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
