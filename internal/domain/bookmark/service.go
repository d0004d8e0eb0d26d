package bookmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, query string) ([]Bookmark, error)
	Create(ctx context.Context, in CreateInput) (*Bookmark, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Bookmark, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo    Repository
	fetcher TitleFetcher
	log     *slog.Logger
}

func NewService(repo Repository, fetcher TitleFetcher, log *slog.Logger) Servicer {
	return &Service{
		repo:    repo,
		fetcher: fetcher,
		log:     log.With("component", "bookmark_service"),
	}
}

// List возвращает закрепленные первыми, затем новые.
func (s *Service) List(ctx context.Context, query string) ([]Bookmark, error) {
	items, err := s.repo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		s.log.Error("failed to list bookmarks", "query", query, "error", err)
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return items, nil
}

// Create подставляет заголовок страницы, если он не передан.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Bookmark, error) {
	b := &Bookmark{
		URL:   strings.TrimSpace(in.URL),
		Title: strings.TrimSpace(in.Title),
	}
	if b.URL == "" {
		return nil, ErrURLRequired
	}

	if b.Title == "" && s.fetcher != nil {
		b.Title = s.fetcher.FetchTitle(ctx, b.URL)
	}
	b.FaviconURL = FaviconFor(b.URL)

	if err := s.repo.Create(ctx, b); err != nil {
		s.log.Error("failed to create bookmark", "url", b.URL, "error", err)
		return nil, fmt.Errorf("create bookmark: %w", err)
	}

	s.log.Info("bookmark created", "id", b.ID, "url", b.URL)
	return b, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Bookmark, error) {
	if in.Pinned == nil && in.Title == nil {
		return nil, ErrNothingToUpdate
	}

	b, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find bookmark", "id", id, "error", err)
		return nil, fmt.Errorf("find bookmark: %w", err)
	}

	if in.Pinned != nil {
		b.Pinned = *in.Pinned
	}
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update bookmark", "id", id, "error", err)
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete bookmark", "id", id, "error", err)
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}
