package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/project"

	"golang.org/x/exp/slog"
)

type ProjectRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewProjectRepository(s *Storage, log *slog.Logger) *ProjectRepository {
	return &ProjectRepository{
		s:   s,
		log: log.With("component", "project_repository"),
	}
}

type projectRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	Todos       string    `db:"todos"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func toProjectRow(p *project.Project) (projectRow, error) {
	items := p.Todos
	if items == nil {
		items = []project.Item{}
	}
	encoded, err := encodeJSON(items)
	if err != nil {
		return projectRow{}, err
	}
	return projectRow{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Todos:       encoded,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}

func (row projectRow) toDomain() (project.Project, error) {
	items := []project.Item{}
	if err := decodeJSON(row.Todos, &items); err != nil {
		return project.Project{}, err
	}
	return project.Project{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Status:      project.Status(row.Status),
		Todos:       items,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

const projectColumns = `id, name, description, status, todos, created_at, updated_at`

func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects ORDER BY updated_at DESC`

	var rows []projectRow
	if err := r.s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select projects: %w", err)
	}

	projects := make([]project.Project, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			r.log.Error("failed to decode project", "id", row.ID, "error", err)
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	const query = `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	var row projectRow
	if err := r.s.db.GetContext(ctx, &row, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, project.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	p, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	const query = `
		INSERT INTO projects (id, name, description, status, todos, created_at, updated_at)
		VALUES (:id, :name, :description, :status, :todos, :created_at, :updated_at)`

	p.ID = newID()
	p.CreatedAt = now()
	p.UpdatedAt = p.CreatedAt
	if p.Todos == nil {
		p.Todos = []project.Item{}
	}

	row, err := toProjectRow(p)
	if err != nil {
		return err
	}
	if _, err := r.s.db.NamedExecContext(ctx, query, row); err != nil {
		r.log.Error("failed to insert project", "name", p.Name, "error", err)
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	const query = `
		UPDATE projects
		SET name = :name, description = :description, status = :status, todos = :todos, updated_at = :updated_at
		WHERE id = :id`

	p.UpdatedAt = now()

	row, err := toProjectRow(p)
	if err != nil {
		return err
	}
	res, err := r.s.db.NamedExecContext(ctx, query, row)
	if err != nil {
		r.log.Error("failed to update project", "id", p.ID, "error", err)
		return fmt.Errorf("update project: %w", err)
	}
	return affected(res, project.ErrNotFound)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "projects", id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return deleted, nil
}
