package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"portfolio-backend/internal/domain"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// Store keeps the sorted project list in memory and serves it as a
// domain.ProjectRepository.
type Store struct {
	root     string
	log      *slog.Logger
	debounce time.Duration

	mu       sync.RWMutex
	projects []domain.Project
	bySlug   map[string]int
}

// NewStore loads root/projects. A missing projects directory yields an
// empty store.
func NewStore(root string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{root: root, log: log, debounce: defaultDebounce}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads every document. On error the previous snapshot is kept.
func (s *Store) Reload() error {
	projects, err := LoadProjects(os.DirFS(s.root))
	if err != nil {
		return err
	}
	sorted := SortProjects(projects)
	index := make(map[string]int, len(sorted))
	for i, p := range sorted {
		index[p.Slug] = i
	}

	s.mu.Lock()
	s.projects = sorted
	s.bySlug = index
	s.mu.Unlock()
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.projects), nil
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.bySlug[slug]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p := s.projects[i]
	return &p, nil
}

// Watch reloads the store whenever a document under the projects directory
// changes. Bursts of events are coalesced. It blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Join(s.root, ProjectsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("content: ensure %s: %w", dir, err)
	}
	if err := addTree(watcher, dir); err != nil {
		return err
	}
	s.log.Info("watching project content", "dir", dir)

	ticker := time.NewTicker(s.debounce / 3)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						s.log.Warn("watch new directory failed", "dir", event.Name, "error", err)
					}
					pending = time.Now()
					continue
				}
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !isProjectFile(event.Name) {
				continue
			}
			pending = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("content watcher error", "error", err)

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < s.debounce {
				continue
			}
			pending = time.Time{}
			if err := s.Reload(); err != nil {
				s.log.Error("content reload failed, keeping previous projects", "error", err)
				continue
			}
			s.log.Info("project content reloaded", "count", s.count())
		}
	}
}

func (s *Store) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

// addTree watches dir and all of its sub-directories.
func addTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("content: watch %s: %w", path, err)
		}
		return nil
	})
}
