package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/event"

	"golang.org/x/exp/slog"
)

type EventRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewEventRepository(s *Storage, log *slog.Logger) *EventRepository {
	return &EventRepository{
		s:   s,
		log: log.With("component", "event_repository"),
	}
}

const eventColumns = `id, title, date, description, created_at, updated_at`

func (r *EventRepository) List(ctx context.Context, filter event.Filter) ([]event.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events`
	var args []any
	switch {
	case filter.Date != "":
		query += ` WHERE date = ?`
		args = append(args, filter.Date)
	case filter.Month != "":
		query += ` WHERE date LIKE ?`
		args = append(args, filter.Month+"-%")
	}
	query += ` ORDER BY date ASC, created_at ASC`

	events := []event.Event{}
	if err := r.s.db.SelectContext(ctx, &events, r.s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Get(ctx context.Context, id string) (*event.Event, error) {
	const query = `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	var e event.Event
	if err := r.s.db.GetContext(ctx, &e, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, event.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	const query = `
		INSERT INTO events (id, title, date, description, created_at, updated_at)
		VALUES (:id, :title, :date, :description, :created_at, :updated_at)`

	e.ID = newID()
	e.CreatedAt = now()
	e.UpdatedAt = e.CreatedAt

	if _, err := r.s.db.NamedExecContext(ctx, query, e); err != nil {
		r.log.Error("failed to insert event", "error", err)
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	const query = `
		UPDATE events
		SET title = :title, date = :date, description = :description, updated_at = :updated_at
		WHERE id = :id`

	e.UpdatedAt = now()

	res, err := r.s.db.NamedExecContext(ctx, query, e)
	if err != nil {
		r.log.Error("failed to update event", "id", e.ID, "error", err)
		return fmt.Errorf("update event: %w", err)
	}
	return affected(res, event.ErrNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "events", id)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	return deleted, nil
}
