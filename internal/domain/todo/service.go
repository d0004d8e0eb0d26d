package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Todo, error)
	Find(ctx context.Context, id string) (*Todo, error)
	Create(ctx context.Context, in CreateInput) (*Todo, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Todo, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   Repository
	images *attachment.Manager
	log    *slog.Logger
}

func NewService(repo Repository, images *attachment.Manager, log *slog.Logger) Servicer {
	return &Service{
		repo:   repo,
		images: images,
		log:    log.With("component", "todo_service"),
	}
}

// List возвращает задачи, новые первыми.
func (s *Service) List(ctx context.Context) ([]Todo, error) {
	todos, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list todos", "error", err)
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Todo, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find todo", "id", id, "error", err)
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Todo, error) {
	t := &Todo{
		Text:      strings.TrimSpace(in.Text),
		Completed: in.Completed,
	}
	if t.Text == "" {
		return nil, ErrTextRequired
	}

	ref, err := s.images.AttachOptional(ctx, in.Image, attachment.FolderTodo)
	if err != nil {
		return nil, fmt.Errorf("attach todo image: %w", err)
	}
	t.SetImage(ref)

	if err := s.repo.Create(ctx, t); err != nil {
		s.images.Detach(ctx, ref.StorageID)
		s.log.Error("failed to create todo", "error", err)
		return nil, fmt.Errorf("create todo: %w", err)
	}

	s.log.Info("todo created", "id", t.ID, "with_image", ref.StorageID != "")
	return t, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Todo, error) {
	if in.empty() {
		return nil, ErrNothingToUpdate
	}

	t, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if text := strings.TrimSpace(in.Text); text != "" {
		t.Text = text
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}

	change, err := s.images.Apply(ctx, t.Image(), in.Image, in.RemoveImage, attachment.FolderTodo)
	if err != nil {
		return nil, fmt.Errorf("replace todo image: %w", err)
	}
	t.SetImage(change.Ref)

	if err := s.repo.Update(ctx, t); err != nil {
		s.images.Rollback(ctx, change)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update todo", "id", id, "error", err)
		return nil, fmt.Errorf("update todo: %w", err)
	}
	s.images.Commit(ctx, change)

	return t, nil
}

// Delete удаляет запись, затем в фоне ее изображение. Отсутствие записи не ошибка.
func (s *Service) Delete(ctx context.Context, id string) error {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		s.log.Error("failed to load todo for delete", "id", id, "error", err)
		return fmt.Errorf("get todo for delete: %w", err)
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete todo", "id", id, "error", err)
		return fmt.Errorf("delete todo: %w", err)
	}

	s.images.Detach(ctx, t.ImagePublicID)
	return nil
}
