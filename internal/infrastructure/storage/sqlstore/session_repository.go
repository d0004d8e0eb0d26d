package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"

	"golang.org/x/exp/slog"
)

type SessionRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewSessionRepository(s *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		s:   s,
		log: log.With("component", "session_repository"),
	}
}

const sessionColumns = `id, project_name, start_time, end_time, duration, notes, is_running, created_at, updated_at`

func (r *SessionRepository) List(ctx context.Context) ([]timetrack.Session, error) {
	return r.ListSince(ctx, time.Time{})
}

func (r *SessionRepository) ListSince(ctx context.Context, since time.Time) ([]timetrack.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM time_sessions`
	var args []any
	if !since.IsZero() {
		query += ` WHERE start_time >= ?`
		args = append(args, since.UTC())
	}
	query += ` ORDER BY created_at DESC`

	sessions := []timetrack.Session{}
	if err := r.s.db.SelectContext(ctx, &sessions, r.s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*timetrack.Session, error) {
	const query = `SELECT ` + sessionColumns + ` FROM time_sessions WHERE id = ?`

	var sess timetrack.Session
	if err := r.s.db.GetContext(ctx, &sess, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, timetrack.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}

func (r *SessionRepository) Create(ctx context.Context, sess *timetrack.Session) error {
	const query = `
		INSERT INTO time_sessions (id, project_name, start_time, end_time, duration, notes, is_running, created_at, updated_at)
		VALUES (:id, :project_name, :start_time, :end_time, :duration, :notes, :is_running, :created_at, :updated_at)`

	sess.ID = newID()
	sess.CreatedAt = now()
	sess.UpdatedAt = sess.CreatedAt
	sess.StartTime = sess.StartTime.UTC().Truncate(time.Microsecond)

	if _, err := r.s.db.NamedExecContext(ctx, query, sess); err != nil {
		r.log.Error("failed to insert session", "project", sess.ProjectName, "error", err)
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, sess *timetrack.Session) error {
	const query = `
		UPDATE time_sessions
		SET project_name = :project_name, start_time = :start_time, end_time = :end_time,
		    duration = :duration, notes = :notes, is_running = :is_running, updated_at = :updated_at
		WHERE id = :id`

	sess.UpdatedAt = now()
	if sess.EndTime != nil {
		end := sess.EndTime.UTC().Truncate(time.Microsecond)
		sess.EndTime = &end
	}

	res, err := r.s.db.NamedExecContext(ctx, query, sess)
	if err != nil {
		r.log.Error("failed to update session", "id", sess.ID, "error", err)
		return fmt.Errorf("update session: %w", err)
	}
	return affected(res, timetrack.ErrNotFound)
}

func (r *SessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "time_sessions", id)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return deleted, nil
}
