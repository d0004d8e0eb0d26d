package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/bookmark"

	"golang.org/x/exp/slog"
)

type BookmarkRepository struct {
	s   *Storage
	log *slog.Logger
}

func NewBookmarkRepository(s *Storage, log *slog.Logger) *BookmarkRepository {
	return &BookmarkRepository{
		s:   s,
		log: log.With("component", "bookmark_repository"),
	}
}

const bookmarkColumns = `id, url, title, favicon_url, pinned, created_at, updated_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *BookmarkRepository) List(ctx context.Context, query string) ([]bookmark.Bookmark, error) {
	q := `SELECT ` + bookmarkColumns + ` FROM bookmarks`
	var args []any
	if query != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
		q += ` WHERE LOWER(title) LIKE ? ESCAPE '\' OR LOWER(url) LIKE ? ESCAPE '\'`
		args = append(args, pattern, pattern)
	}
	q += ` ORDER BY pinned DESC, created_at DESC`

	items := []bookmark.Bookmark{}
	if err := r.s.db.SelectContext(ctx, &items, r.s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("select bookmarks: %w", err)
	}
	return items, nil
}

func (r *BookmarkRepository) Get(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	const query = `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = ?`

	var b bookmark.Bookmark
	if err := r.s.db.GetContext(ctx, &b, r.s.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookmark.ErrNotFound
		}
		return nil, fmt.Errorf("get bookmark: %w", err)
	}
	return &b, nil
}

func (r *BookmarkRepository) Create(ctx context.Context, b *bookmark.Bookmark) error {
	const query = `
		INSERT INTO bookmarks (id, url, title, favicon_url, pinned, created_at, updated_at)
		VALUES (:id, :url, :title, :favicon_url, :pinned, :created_at, :updated_at)`

	b.ID = newID()
	b.CreatedAt = now()
	b.UpdatedAt = b.CreatedAt

	if _, err := r.s.db.NamedExecContext(ctx, query, b); err != nil {
		r.log.Error("failed to insert bookmark", "url", b.URL, "error", err)
		return fmt.Errorf("insert bookmark: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Update(ctx context.Context, b *bookmark.Bookmark) error {
	const query = `
		UPDATE bookmarks
		SET url = :url, title = :title, favicon_url = :favicon_url, pinned = :pinned, updated_at = :updated_at
		WHERE id = :id`

	b.UpdatedAt = now()

	res, err := r.s.db.NamedExecContext(ctx, query, b)
	if err != nil {
		r.log.Error("failed to update bookmark", "id", b.ID, "error", err)
		return fmt.Errorf("update bookmark: %w", err)
	}
	return affected(res, bookmark.ErrNotFound)
}

func (r *BookmarkRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := deleteByID(ctx, r.s.db, "bookmarks", id)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	return deleted, nil
}
