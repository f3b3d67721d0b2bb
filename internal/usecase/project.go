package usecase

import (
	"context"
	"errors"
	"slices"
	"strings"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type projectUsecase struct {
	repo domain.ProjectRepository
}

func NewProjectUsecase(repo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{repo: repo}
}

// ListProjects returns projects newest first, optionally narrowed to one tag.
func (u *projectUsecase) ListProjects(ctx context.Context, tag string) ([]domain.Project, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	tag = strings.TrimSpace(tag)
	if tag == "" {
		return projects, nil
	}

	filtered := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasTag(tag) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (u *projectUsecase) GetProject(ctx context.Context, slug string) (*domain.Project, error) {
	project, err := u.repo.GetBySlug(ctx, slug)
	if errors.Is(err, domain.ErrProjectNotFound) {
		return nil, apperror.NotFound("Project not found")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return project, nil
}

// ListTags returns the distinct tags across all projects, sorted.
func (u *projectUsecase) ListTags(ctx context.Context) ([]string, error) {
	projects, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var tags []string
	for _, p := range projects {
		for _, t := range p.Tags {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
	}
	slices.Sort(tags)
	return tags, nil
}
