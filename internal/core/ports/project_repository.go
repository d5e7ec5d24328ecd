package ports

import (
	"context"

	"github.com/projecthub/projecthub/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Insert(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}
