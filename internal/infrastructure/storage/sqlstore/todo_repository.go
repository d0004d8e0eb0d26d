package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"

	"golang.org/x/exp/slog"
)

type TodoRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewTodoRepository(s *Storage, log *slog.Logger) *TodoRepository {
	return &TodoRepository{
		s:   s,
		log: log.With("component", "todo_repository"),
	}
}

const todoColumns = `id, text, completed, image_url, image_public_id, created_at, updated_at`

func (r *TodoRepository) List(ctx context.Context) ([]todo.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos ORDER BY created_at DESC`

	todos := []todo.Todo{}
	if err := r.s.db.SelectContext(ctx, &todos, query); err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Get(ctx context.Context, id string) (*todo.Todo, error) {
	const query = `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`

	var t todo.Todo
	if err := r.s.db.GetContext(ctx, &t, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, todo.ErrNotFound
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return &t, nil
}

func (r *TodoRepository) Create(ctx context.Context, t *todo.Todo) error {
	const query = `
		INSERT INTO todos (id, text, completed, image_url, image_public_id, created_at, updated_at)
		VALUES (:id, :text, :completed, :image_url, :image_public_id, :created_at, :updated_at)`

	t.ID = newID()
	t.CreatedAt = now()
	t.UpdatedAt = t.CreatedAt

	if _, err := r.s.db.NamedExecContext(ctx, query, t); err != nil {
		r.log.Error("failed to insert todo", "error", err)
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) Update(ctx context.Context, t *todo.Todo) error {
	const query = `
		UPDATE todos
		SET text = :text, completed = :completed, image_url = :image_url,
		    image_public_id = :image_public_id, updated_at = :updated_at
		WHERE id = :id`

	t.UpdatedAt = now()

	res, err := r.s.db.NamedExecContext(ctx, query, t)
	if err != nil {
		r.log.Error("failed to update todo", "id", t.ID, "error", err)
		return fmt.Errorf("update todo: %w", err)
	}
	return affected(res, todo.ErrNotFound)
}

func (r *TodoRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "todos", id)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return deleted, nil
}
