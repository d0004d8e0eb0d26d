package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, filter Filter) ([]Event, error)
	Find(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, in CreateInput) (*Event, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Event, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "event_service"),
	}
}

// List возвращает события по возрастанию даты.
func (s *Service) List(ctx context.Context, filter Filter) ([]Event, error) {
	if filter.Date != "" && !validDate(filter.Date) {
		return nil, ErrInvalidDate
	}
	if filter.Month != "" {
		if _, err := time.Parse(MonthLayout, filter.Month); err != nil {
			return nil, ErrInvalidMonth
		}
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("failed to list events", "error", err)
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Event, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find event", "id", id, "error", err)
		return nil, fmt.Errorf("find event: %w", err)
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Event, error) {
	e := &Event{
		Title:       strings.TrimSpace(in.Title),
		Date:        strings.TrimSpace(in.Date),
		Description: strings.TrimSpace(in.Description),
	}
	if e.Title == "" || e.Date == "" {
		return nil, ErrRequiredFields
	}
	if !validDate(e.Date) {
		return nil, ErrInvalidDate
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.log.Error("failed to create event", "title", e.Title, "error", err)
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("event created", "id", e.ID, "date", e.Date)
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Event, error) {
	if in.empty() {
		return nil, ErrNothingToUpdate
	}

	e, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, ErrRequiredFields
		}
		e.Title = title
	}
	if in.Date != nil {
		date := strings.TrimSpace(*in.Date)
		if date == "" {
			return nil, ErrRequiredFields
		}
		if !validDate(date) {
			return nil, ErrInvalidDate
		}
		e.Date = date
	}
	if in.Description != nil {
		e.Description = strings.TrimSpace(*in.Description)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update event", "id", id, "error", err)
		return nil, fmt.Errorf("update event: %w", err)
	}

	return e, nil
}

// Delete не считает отсутствие события ошибкой.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete event", "id", id, "error", err)
		return fmt.Errorf("delete event: %w", err)
	}
	if !deleted {
		s.log.Debug("event already deleted", "id", id)
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
