// Package content loads project case studies from Markdown documents with
// YAML front matter.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"portfolio-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

// ProjectsDir is the sub-directory of the content root holding projects.
const ProjectsDir = "projects"

const frontMatterDelim = "---"

// ErrNoFrontMatter is returned for documents that do not open with "---".
var ErrNoFrontMatter = errors.New("content: document has no front matter")

// ParseProject decodes one document. path is only used for error messages
// and SourcePath.
func ParseProject(path string, data []byte) (domain.Project, error) {
	meta, body, err := splitFrontMatter(data)
	if err != nil {
		return domain.Project{}, fmt.Errorf("%s: %w", path, err)
	}

	var p domain.Project
	if err := yaml.Unmarshal(meta, &p); err != nil {
		return domain.Project{}, fmt.Errorf("%s: decode front matter: %w", path, err)
	}

	var missing []string
	if strings.TrimSpace(p.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(p.Slug) == "" {
		missing = append(missing, "slug")
	}
	if strings.TrimSpace(p.Summary) == "" {
		missing = append(missing, "summary")
	}
	if p.Dates == nil || strings.TrimSpace(p.Dates.Start) == "" {
		missing = append(missing, "dates.start")
	}
	if len(missing) > 0 {
		return domain.Project{}, fmt.Errorf("%s: missing required fields: %s", path, strings.Join(missing, ", "))
	}

	p.URL = "/projects/" + p.Slug
	p.Body = string(body)
	p.SourcePath = path
	return p, nil
}

func splitFrontMatter(data []byte) (meta, body []byte, err error) {
	text := strings.TrimPrefix(string(data), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.SplitAfter(text, "\n")
	if strings.TrimRight(lines[0], " \t\n") != frontMatterDelim {
		return nil, nil, ErrNoFrontMatter
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\n") == frontMatterDelim {
			meta = []byte(strings.Join(lines[1:i], ""))
			body = []byte(strings.TrimLeft(strings.Join(lines[i+1:], ""), "\n"))
			return meta, body, nil
		}
	}
	return nil, nil, errors.New("content: unterminated front matter")
}

func isProjectFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

// LoadProjects parses every project document under root/projects. Slugs
// must be unique. The result is unsorted.
func LoadProjects(fsys fs.FS) ([]domain.Project, error) {
	var projects []domain.Project
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ProjectsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == ProjectsDir {
				return fs.SkipDir
			}
			return err
		}
		if d.IsDir() || !isProjectFile(d.Name()) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		p, err := ParseProject(path, data)
		if err != nil {
			return err
		}
		if prev, dup := seen[p.Slug]; dup {
			return fmt.Errorf("content: duplicate slug %q in %s and %s", p.Slug, prev, path)
		}
		seen[p.Slug] = path
		projects = append(projects, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}
