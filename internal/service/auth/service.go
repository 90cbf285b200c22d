package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
	"vibe-shop/internal/logx"
)

// Seed admin credentials.
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin"
)

// Service handles registration and login.
type Service struct {
	repo             userRepository
	tokens           *Tokens
	logger           logx.Logger
	operationTimeout time.Duration
	hashCost         int
}

// NewService creates an auth Service.
func NewService(repo userRepository, tokens *Tokens, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		tokens:           tokens,
		logger:           logger,
		operationTimeout: timeout,
		hashCost:         bcrypt.DefaultCost,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Register creates a user account. A taken username is apperr.ErrConflict.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password required", apperr.ErrInvalid)
	}
	return s.create(ctx, username, password, domain.RoleUser)
}

func (s *Service) create(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password too long", apperr.ErrInvalid)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u := &domain.User{Username: username, PasswordHash: string(hash), Role: role}
	id, err := s.repo.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

// Login checks credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password required", apperr.ErrInvalid)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("%w: incorrect username or password", apperr.ErrUnauthorized)
	}
	return s.tokens.Issue(u.Username, u.Role)
}

// Me returns the account of the token holder.
func (s *Service) Me(ctx context.Context, token string) (*domain.User, error) {
	p, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := s.repo.GetUserByUsername(ctx, p.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user not found", apperr.ErrNotFound)
	}
	return u, nil
}

// Authenticate verifies a bearer token.
func (s *Service) Authenticate(token string) (Principal, error) {
	return s.tokens.Parse(token)
}

// EnsureAdmin creates the seed admin account when no admin exists.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	cctx, cancel := s.withTimeout(ctx)
	has, err := s.repo.HasAdmin(cctx)
	cancel()
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if has {
		return nil
	}
	_, err = s.create(ctx, SeedAdminUsername, SeedAdminPassword, domain.RoleAdmin)
	if errors.Is(err, apperr.ErrConflict) {
		s.logger.Warn("seed admin username is taken by a non-admin account")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	s.logger.Info("seed admin created", logx.String("username", SeedAdminUsername))
	return nil
}
