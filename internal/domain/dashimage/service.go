package dashimage

import (
	"context"
	"errors"
	"fmt"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Image, error)
	Upload(ctx context.Context, data []byte) (*Image, error)
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
		log:    log.With("component", "dashboard_image_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Image, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list dashboard images", "error", err)
		return nil, fmt.Errorf("list dashboard images: %w", err)
	}
	return items, nil
}

// Upload требует настроенного хранилища, в отличие от задач и распорядка.
func (s *Service) Upload(ctx context.Context, data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrImageRequired
	}

	ref, err := s.images.Attach(ctx, data, attachment.FolderDashboard)
	if err != nil {
		return nil, fmt.Errorf("upload dashboard image: %w", err)
	}

	img := &Image{URL: ref.URL, PublicID: ref.StorageID}
	if err := s.repo.Create(ctx, img); err != nil {
		s.images.Detach(ctx, ref.StorageID)
		s.log.Error("failed to save dashboard image", "error", err)
		return nil, fmt.Errorf("save dashboard image: %w", err)
	}

	s.log.Info("dashboard image uploaded", "id", img.ID, "public_id", img.PublicID)
	return img, nil
}

// Delete удаляет запись, затем в фоне объект в хранилище.
func (s *Service) Delete(ctx context.Context, id string) error {
	img, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to find dashboard image", "id", id, "error", err)
		return fmt.Errorf("find dashboard image: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.Error("failed to delete dashboard image", "id", id, "error", err)
		return fmt.Errorf("delete dashboard image: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.images.Detach(ctx, img.PublicID)
	return nil
}
