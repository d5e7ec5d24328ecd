package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/projecthub/projecthub/internal/core/domain"
	"github.com/projecthub/projecthub/internal/core/ports"
)

// ListCache abstracts the project-list cache (Redis). Cache failures are
// never fatal; the repository remains the source of truth.
type ListCache interface {
	Get(ctx context.Context) ([]*domain.Project, bool, error)
	Set(ctx context.Context, projects []*domain.Project) error
	Invalidate(ctx context.Context) error
}

type projectService struct {
	repo  ports.ProjectRepository
	cache ListCache
	log   zerolog.Logger
}

// NewProjectService returns a ProjectService implementation. cache may be
// nil, in which case every list hits the repository.
func NewProjectService(repo ports.ProjectRepository, cache ListCache, log zerolog.Logger) ports.ProjectService {
	return &projectService{repo: repo, cache: cache, log: log}
}

func (s *projectService) Create(ctx context.Context, input ports.CreateProjectInput) (*domain.Project, error) {
	created, err := s.repo.Insert(ctx, &domain.Project{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("project_id", created.ID).Str("name", created.Name).Msg("project created")
	return created, nil
}

func (s *projectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("project cache read failed, falling back to store")
		} else if ok {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, projects); err != nil {
			s.log.Warn().Err(err).Msg("project cache write failed")
		}
	}
	return projects, nil
}

func (s *projectService) Update(ctx context.Context, id int64, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}

	updated, err := s.repo.Update(ctx, project)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("project_id", updated.ID).Msg("project updated")
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.log.Info().Int64("project_id", id).Msg("project deleted")
	return nil
}

func (s *projectService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("project cache invalidation failed")
	}
}
