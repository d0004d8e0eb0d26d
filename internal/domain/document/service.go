package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Document, error)
	Find(ctx context.Context, id string) (*Document, error)
	Create(ctx context.Context, in CreateInput) (*Document, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Document, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "document_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list documents", "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	s.log.Debug("documents listed", "count", len(docs))
	return docs, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Document, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find document", "id", id, "error", err)
		return nil, fmt.Errorf("find document: %w", err)
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Document, error) {
	d := &Document{
		Title:   strings.TrimSpace(in.Title),
		Type:    in.Type,
		Content: in.Content,
	}
	if d.Title == "" {
		return nil, ErrTitleRequired
	}
	if d.Type == "" {
		d.Type = TypeText
	}
	if !d.Type.Valid() {
		return nil, ErrInvalidType
	}
	diagram, err := diagramData(in.DiagramData)
	if err != nil {
		return nil, err
	}
	d.DiagramData = diagram

	if err := s.repo.Create(ctx, d); err != nil {
		s.log.Error("failed to create document", "title", d.Title, "error", err)
		return nil, fmt.Errorf("create document: %w", err)
	}

	s.log.Info("document created", "id", d.ID, "type", d.Type, "diagram_bytes", len(d.DiagramData))
	return d, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Document, error) {
	if in.empty() {
		return nil, ErrNothingToUpdate
	}

	d, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		d.Title = title
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return nil, ErrInvalidType
		}
		d.Type = *in.Type
	}
	if in.Content != nil {
		d.Content = *in.Content
	}
	if in.DiagramData != nil {
		diagram, err := diagramData(in.DiagramData)
		if err != nil {
			return nil, err
		}
		d.DiagramData = diagram
	}

	if err := s.repo.Update(ctx, d); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update document", "id", id, "error", err)
		return nil, fmt.Errorf("update document: %w", err)
	}

	s.log.Info("document updated", "id", id, "diagram_bytes", len(d.DiagramData))
	return d, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete document", "id", id, "error", err)
		return fmt.Errorf("delete document: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// diagramData нормализует JSON диаграммы: пустое значение и null хранятся как nil.
func diagramData(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, ErrInvalidDiagram
	}
	return json.RawMessage(trimmed), nil
}
