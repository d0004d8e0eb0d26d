package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/dashimage"

	"golang.org/x/exp/slog"
)

type DashboardImageRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewDashboardImageRepository(s *Storage, log *slog.Logger) *DashboardImageRepository {
	return &DashboardImageRepository{
		s:   s,
		log: log.With("component", "dashboard_image_repository"),
	}
}

func (r *DashboardImageRepository) List(ctx context.Context) ([]dashimage.Image, error) {
	const query = `SELECT id, url, public_id, created_at FROM dashboard_images ORDER BY created_at DESC`

	items := []dashimage.Image{}
	if err := r.s.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("select dashboard images: %w", err)
	}
	return items, nil
}

func (r *DashboardImageRepository) Get(ctx context.Context, id string) (*dashimage.Image, error) {
	const query = `SELECT id, url, public_id, created_at FROM dashboard_images WHERE id = ?`

	var img dashimage.Image
	if err := r.s.db.GetContext(ctx, &img, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dashimage.ErrNotFound
		}
		return nil, fmt.Errorf("get dashboard image: %w", err)
	}
	return &img, nil
}

func (r *DashboardImageRepository) Create(ctx context.Context, img *dashimage.Image) error {
	const query = `
		INSERT INTO dashboard_images (id, url, public_id, created_at)
		VALUES (:id, :url, :public_id, :created_at)`

	img.ID = newID()
	img.CreatedAt = now()

	if _, err := r.s.db.NamedExecContext(ctx, query, img); err != nil {
		r.log.Error("failed to insert dashboard image", "error", err)
		return fmt.Errorf("insert dashboard image: %w", err)
	}
	return nil
}

func (r *DashboardImageRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "dashboard_images", id)
	if err != nil {
		return false, fmt.Errorf("delete dashboard image: %w", err)
	}
	return deleted, nil
}
