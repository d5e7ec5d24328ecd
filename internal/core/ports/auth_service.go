package ports

import (
	"context"

	"github.com/projecthub/projecthub/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, username, password string, role domain.Role) (string, *domain.User, error)
}
