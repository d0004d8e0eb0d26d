package project

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Project, error)
	Find(ctx context.Context, id string) (*Project, error)
	Create(ctx context.Context, in CreateInput) (*Project, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Project, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	now  func() time.Time
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With("component", "project_service"),
	}
}

// List возвращает проекты, недавно измененные первыми.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list projects", "error", err)
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Project, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find project", "id", id, "error", err)
		return nil, fmt.Errorf("find project: %w", err)
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Project, error) {
	p := &Project{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Status:      in.Status,
		Todos:       s.items(in.Todos),
	}
	if p.Name == "" {
		return nil, ErrNameRequired
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if !p.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error("failed to create project", "name", p.Name, "error", err)
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.Info("project created", "id", p.ID, "name", p.Name)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Project, error) {
	if in.empty() {
		return nil, ErrNothingToUpdate
	}

	p, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		p.Name = name
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		p.Status = *in.Status
	}
	if in.Todos != nil {
		p.Todos = s.items(in.Todos)
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update project", "id", id, "error", err)
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete project", "id", id, "error", err)
		return fmt.Errorf("delete project: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info("project deleted", "id", id)
	return nil
}

// items отбрасывает задачи с пустым текстом.
func (s *Service) items(in []ItemInput) []Item {
	out := make([]Item, 0, len(in))
	for _, it := range in {
		text := strings.TrimSpace(it.Text)
		if text == "" {
			continue
		}
		created := s.now().UTC()
		if it.CreatedAt != nil && !it.CreatedAt.IsZero() {
			created = it.CreatedAt.UTC()
		}
		out = append(out, Item{Text: text, Completed: it.Completed, CreatedAt: created})
	}
	return out
}
