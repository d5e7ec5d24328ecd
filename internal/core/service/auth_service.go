package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/projecthub/projecthub/internal/core/domain"
	"github.com/projecthub/projecthub/internal/core/ports"
	"github.com/projecthub/projecthub/internal/core/token"
)

// AuthService implements registration and login over the (username, role)
// identity pair.
type AuthService struct {
	repo   ports.UserRepository
	issuer *token.Issuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, logger: logger}
}

// Register creates a user with a hashed password. A second registration for
// the same (username, role) pair fails with ErrDuplicateIdentity; the same
// username under the other role is a distinct identity and succeeds.
func (s *AuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, ok := domain.ParseRole(string(role)); !ok {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login authenticates the (username, password, role) triple and mints a
// token. A missing pair and a wrong password produce the same
// ErrInvalidCredentials so callers cannot probe which part was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string, role domain.Role) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsernameRole(ctx, username, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return signed, user, nil
}
