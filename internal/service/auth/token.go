package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
)

// DefaultTokenTTL is the lifetime of issued access tokens.
const DefaultTokenTTL = 30 * time.Minute

// Claims are the access token claims.
type Claims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role"`
}

// Principal is the authenticated caller.
type Principal struct {
	Username string
	Role     domain.Role
}

// IsAdmin reports whether the caller has the admin role.
func (p Principal) IsAdmin() bool { return p.Role == domain.RoleAdmin }

// Tokens issues and verifies HS256 access tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens creates a token manager. A non-positive ttl selects DefaultTokenTTL.
func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for username with role.
func (t *Tokens) Issue(username string, role domain.Role) (string, error) {
	now := t.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Role: role,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Parse verifies a token and returns its principal. Any failure is apperr.ErrUnauthorized.
func (t *Tokens) Parse(token string) (Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return Principal{}, fmt.Errorf("%w: invalid token", apperr.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return Principal{}, fmt.Errorf("%w: token subject is required", apperr.ErrUnauthorized)
	}
	role := claims.Role
	if role == "" {
		role = domain.RoleUser
	}
	return Principal{Username: claims.Subject, Role: role}, nil
}
