package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/routine"

	"golang.org/x/exp/slog"
)

type RoutineRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewRoutineRepository(s *Storage, log *slog.Logger) *RoutineRepository {
	return &RoutineRepository{
		s:   s,
		log: log.With("component", "routine_repository"),
	}
}

type routineRow struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Date          string    `db:"date"`
	StartTime     string    `db:"start_time"`
	EndTime       string    `db:"end_time"`
	Links         string    `db:"links"`
	Description   string    `db:"description"`
	ImageURL      string    `db:"image_url"`
	ImagePublicID string    `db:"image_public_id"`
	Updated       string    `db:"updated_note"`
	Pinned        bool      `db:"pinned"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func toRoutineRow(r *routine.Routine) (routineRow, error) {
	links := r.Links
	if links == nil {
		links = []string{}
	}
	encoded, err := encodeJSON(links)
	if err != nil {
		return routineRow{}, err
	}
	return routineRow{
		ID:            r.ID,
		Name:          r.Name,
		Date:          r.Date,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Links:         encoded,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		ImagePublicID: r.ImagePublicID,
		Updated:       r.Updated,
		Pinned:        r.Pinned,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}

func (row routineRow) toDomain() (routine.Routine, error) {
	links := []string{}
	if err := decodeJSON(row.Links, &links); err != nil {
		return routine.Routine{}, err
	}
	return routine.Routine{
		ID:            row.ID,
		Name:          row.Name,
		Date:          row.Date,
		StartTime:     row.StartTime,
		EndTime:       row.EndTime,
		Links:         links,
		Description:   row.Description,
		ImageURL:      row.ImageURL,
		ImagePublicID: row.ImagePublicID,
		Updated:       row.Updated,
		Pinned:        row.Pinned,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

const routineColumns = `id, name, date, start_time, end_time, links, description,
	image_url, image_public_id, updated_note, pinned, created_at, updated_at`

func (r *RoutineRepository) List(ctx context.Context) ([]routine.Routine, error) {
	const query = `SELECT ` + routineColumns + ` FROM routines
		ORDER BY pinned DESC, date ASC, start_time ASC, created_at ASC`

	var rows []routineRow
	if err := r.s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select routines: %w", err)
	}

	routines := make([]routine.Routine, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			r.log.Error("failed to decode routine", "id", row.ID, "error", err)
			return nil, err
		}
		routines = append(routines, item)
	}
	return routines, nil
}

func (r *RoutineRepository) Get(ctx context.Context, id string) (*routine.Routine, error) {
	const query = `SELECT ` + routineColumns + ` FROM routines WHERE id = ?`

	var row routineRow
	if err := r.s.db.GetContext(ctx, &row, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, routine.ErrNotFound
		}
		return nil, fmt.Errorf("get routine: %w", err)
	}

	item, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *RoutineRepository) Create(ctx context.Context, rt *routine.Routine) error {
	const query = `
		INSERT INTO routines (id, name, date, start_time, end_time, links, description,
			image_url, image_public_id, updated_note, pinned, created_at, updated_at)
		VALUES (:id, :name, :date, :start_time, :end_time, :links, :description,
			:image_url, :image_public_id, :updated_note, :pinned, :created_at, :updated_at)`

	rt.ID = newID()
	rt.CreatedAt = now()
	rt.UpdatedAt = rt.CreatedAt
	if rt.Links == nil {
		rt.Links = []string{}
	}

	row, err := toRoutineRow(rt)
	if err != nil {
		return err
	}
	if _, err := r.s.db.NamedExecContext(ctx, query, row); err != nil {
		r.log.Error("failed to insert routine", "error", err)
		return fmt.Errorf("insert routine: %w", err)
	}
	return nil
}

func (r *RoutineRepository) Update(ctx context.Context, rt *routine.Routine) error {
	const query = `
		UPDATE routines
		SET name = :name, date = :date, start_time = :start_time, end_time = :end_time,
		    links = :links, description = :description, image_url = :image_url,
		    image_public_id = :image_public_id, updated_note = :updated_note,
		    pinned = :pinned, updated_at = :updated_at
		WHERE id = :id`

	rt.UpdatedAt = now()

	row, err := toRoutineRow(rt)
	if err != nil {
		return err
	}
	res, err := r.s.db.NamedExecContext(ctx, query, row)
	if err != nil {
		r.log.Error("failed to update routine", "id", rt.ID, "error", err)
		return fmt.Errorf("update routine: %w", err)
	}
	return affected(res, routine.ErrNotFound)
}

func (r *RoutineRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "routines", id)
	if err != nil {
		return false, fmt.Errorf("delete routine: %w", err)
	}
	return deleted, nil
}
