package ports

import (
	"context"

	"github.com/projecthub/projecthub/internal/core/domain"
)

// CreateProjectInput carries the fields for a new project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// UpdateProjectInput carries a partial update; nil fields are left untouched.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, id int64, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}
