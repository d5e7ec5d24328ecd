package ports

import (
	"context"

	"github.com/projecthub/projecthub/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// Uniqueness of the (username, role) pair is enforced at this boundary;
// Insert surfaces a violation as domain.ErrDuplicateIdentity.
type UserRepository interface {
	FindByUsernameRole(ctx context.Context, username string, role domain.Role) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}
