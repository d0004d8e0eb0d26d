package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/document"

	"golang.org/x/exp/slog"
)

type DocumentRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewDocumentRepository(s *Storage, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		s:   s,
		log: log.With("component", "document_repository"),
	}
}

type documentRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Type        string         `db:"type"`
	Content     string         `db:"content"`
	DiagramData sql.NullString `db:"diagram_data"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func toDocumentRow(d *document.Document) documentRow {
	return documentRow{
		ID:          d.ID,
		Title:       d.Title,
		Type:        string(d.Type),
		Content:     d.Content,
		DiagramData: nullJSON(d.DiagramData),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (row documentRow) toDomain() document.Document {
	return document.Document{
		ID:          row.ID,
		Title:       row.Title,
		Type:        document.Type(row.Type),
		Content:     row.Content,
		DiagramData: rawJSON(row.DiagramData),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

const documentColumns = `id, title, type, content, diagram_data, created_at, updated_at`

func (r *DocumentRepository) List(ctx context.Context) ([]document.Document, error) {
	const query = `SELECT ` + documentColumns + ` FROM documents ORDER BY updated_at DESC`

	var rows []documentRow
	if err := r.s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select documents: %w", err)
	}

	docs := make([]document.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.toDomain())
	}
	return docs, nil
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (*document.Document, error) {
	const query = `SELECT ` + documentColumns + ` FROM documents WHERE id = ?`

	var row documentRow
	if err := r.s.db.GetContext(ctx, &row, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, document.ErrNotFound
		}
		return nil, fmt.Errorf("get document: %w", err)
	}

	d := row.toDomain()
	return &d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	const query = `
		INSERT INTO documents (id, title, type, content, diagram_data, created_at, updated_at)
		VALUES (:id, :title, :type, :content, :diagram_data, :created_at, :updated_at)`

	d.ID = newID()
	d.CreatedAt = now()
	d.UpdatedAt = d.CreatedAt

	if _, err := r.s.db.NamedExecContext(ctx, query, toDocumentRow(d)); err != nil {
		r.log.Error("failed to insert document", "title", d.Title, "error", err)
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Update(ctx context.Context, d *document.Document) error {
	const query = `
		UPDATE documents
		SET title = :title, type = :type, content = :content, diagram_data = :diagram_data, updated_at = :updated_at
		WHERE id = :id`

	d.UpdatedAt = now()

	res, err := r.s.db.NamedExecContext(ctx, query, toDocumentRow(d))
	if err != nil {
		r.log.Error("failed to update document", "id", d.ID, "error", err)
		return fmt.Errorf("update document: %w", err)
	}
	return affected(res, document.ErrNotFound)
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "documents", id)
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	return deleted, nil
}
