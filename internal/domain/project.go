package domain

import (
	"context"
	"errors"
)

// ErrProjectNotFound is returned when no project has the requested slug.
var ErrProjectNotFound = errors.New("project not found")

type ProjectDates struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
}

type ProjectLinks struct {
	Repo string `json:"repo,omitempty" yaml:"repo,omitempty"`
	Live string `json:"live,omitempty" yaml:"live,omitempty"`
}

type ProjectMetric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Project is a case study loaded from a content document. Body holds the
// raw document text after the front matter.
type Project struct {
	Title   string          `json:"title" yaml:"title"`
	Slug    string          `json:"slug" yaml:"slug"`
	Summary string          `json:"summary" yaml:"summary"`
	Cover   string          `json:"cover,omitempty" yaml:"cover,omitempty"`
	Tags    []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	Role    string          `json:"role,omitempty" yaml:"role,omitempty"`
	Stack   []string        `json:"stack,omitempty" yaml:"stack,omitempty"`
	Dates   *ProjectDates   `json:"dates,omitempty" yaml:"dates,omitempty"`
	Links   *ProjectLinks   `json:"links,omitempty" yaml:"links,omitempty"`
	Metrics []ProjectMetric `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	URL        string `json:"url" yaml:"-"`
	Body       string `json:"body,omitempty" yaml:"-"`
	SourcePath string `json:"-" yaml:"-"`
}

// HasTag reports whether the project carries tag.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProjectRepository returns projects already ordered newest first.
type ProjectRepository interface {
	List(ctx context.Context) ([]Project, error)
	GetBySlug(ctx context.Context, slug string) (*Project, error)
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context, tag string) ([]Project, error)
	GetProject(ctx context.Context, slug string) (*Project, error)
	ListTags(ctx context.Context) ([]string, error)
}
