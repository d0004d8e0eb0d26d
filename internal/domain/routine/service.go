package routine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Routine, error)
	Find(ctx context.Context, id string) (*Routine, error)
	Create(ctx context.Context, f Fields) (*Routine, error)
	Replace(ctx context.Context, id string, f Fields) (*Routine, error)
	Patch(ctx context.Context, id string, p Patch) (*Routine, error)
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
		log:    log.With("component", "routine_service"),
	}
}

// List сортирует: закрепленные первыми, затем по дате, времени начала и созданию.
func (s *Service) List(ctx context.Context) ([]Routine, error) {
	routines, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list routines", "error", err)
		return nil, fmt.Errorf("list routines: %w", err)
	}
	return routines, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Routine, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find routine", "id", id, "error", err)
		return nil, fmt.Errorf("find routine: %w", err)
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, f Fields) (*Routine, error) {
	f = trimFields(f)
	if !f.valid() {
		return nil, ErrRequiredFields
	}

	r := &Routine{
		Name:        f.Name,
		Date:        f.Date,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		Links:       nonNil(f.Links),
		Description: f.Description,
		Updated:     f.Updated,
	}
	if f.Pinned != nil {
		r.Pinned = *f.Pinned
	}

	ref, err := s.images.AttachOptional(ctx, f.Image, attachment.FolderRoutine)
	if err != nil {
		return nil, fmt.Errorf("attach routine image: %w", err)
	}
	r.SetImage(ref)

	if err := s.repo.Create(ctx, r); err != nil {
		s.images.Detach(ctx, ref.StorageID)
		s.log.Error("failed to create routine", "name", r.Name, "error", err)
		return nil, fmt.Errorf("create routine: %w", err)
	}

	s.log.Info("routine created", "id", r.ID, "date", r.Date)
	return r, nil
}

// Replace перезаписывает все поля записи, кроме pinned, если он не передан.
func (s *Service) Replace(ctx context.Context, id string, f Fields) (*Routine, error) {
	f = trimFields(f)
	if !f.valid() {
		return nil, ErrRequiredFields
	}

	r, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Name = f.Name
	r.Date = f.Date
	r.StartTime = f.StartTime
	r.EndTime = f.EndTime
	r.Links = nonNil(f.Links)
	r.Description = f.Description
	r.Updated = f.Updated
	if f.Pinned != nil {
		r.Pinned = *f.Pinned
	}

	return s.save(ctx, r, f.Image, f.RemoveImage)
}

func (s *Service) Patch(ctx context.Context, id string, p Patch) (*Routine, error) {
	if p.empty() {
		return nil, ErrNothingToUpdate
	}

	r, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, field := range []struct {
		src *string
		dst *string
	}{
		{p.Name, &r.Name},
		{p.Date, &r.Date},
		{p.StartTime, &r.StartTime},
		{p.EndTime, &r.EndTime},
	} {
		if field.src == nil {
			continue
		}
		v := strings.TrimSpace(*field.src)
		if v == "" {
			return nil, ErrRequiredFields
		}
		*field.dst = v
	}
	if p.Description != nil {
		r.Description = strings.TrimSpace(*p.Description)
	}
	if p.Updated != nil {
		r.Updated = strings.TrimSpace(*p.Updated)
	}
	if p.Links != nil {
		r.Links = p.Links
	}
	if p.Pinned != nil {
		r.Pinned = *p.Pinned
	}

	return s.save(ctx, r, p.Image, p.RemoveImage)
}

func (s *Service) save(ctx context.Context, r *Routine, image []byte, removeImage bool) (*Routine, error) {
	change, err := s.images.Apply(ctx, r.Image(), image, removeImage, attachment.FolderRoutine)
	if err != nil {
		return nil, fmt.Errorf("replace routine image: %w", err)
	}
	r.SetImage(change.Ref)

	if err := s.repo.Update(ctx, r); err != nil {
		s.images.Rollback(ctx, change)
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update routine", "id", r.ID, "error", err)
		return nil, fmt.Errorf("update routine: %w", err)
	}
	s.images.Commit(ctx, change)
	return r, nil
}

// Delete удаляет запись, затем в фоне ее изображение. Отсутствие записи не ошибка.
func (s *Service) Delete(ctx context.Context, id string) error {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		s.log.Error("failed to load routine for delete", "id", id, "error", err)
		return fmt.Errorf("get routine for delete: %w", err)
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete routine", "id", id, "error", err)
		return fmt.Errorf("delete routine: %w", err)
	}

	s.images.Detach(ctx, r.ImagePublicID)
	return nil
}

func trimFields(f Fields) Fields {
	f.Name = strings.TrimSpace(f.Name)
	f.Date = strings.TrimSpace(f.Date)
	f.StartTime = strings.TrimSpace(f.StartTime)
	f.EndTime = strings.TrimSpace(f.EndTime)
	f.Description = strings.TrimSpace(f.Description)
	f.Updated = strings.TrimSpace(f.Updated)
	return f
}

func nonNil(links []string) []string {
	if links == nil {
		return []string{}
	}
	return links
}
