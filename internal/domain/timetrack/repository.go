package timetrack

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context) ([]Session, error)
	// ListSince возвращает сессии, начатые не раньше since. Нулевое since без фильтра.
	ListSince(ctx context.Context, since time.Time) ([]Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Create(ctx context.Context, s *Session) error
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) (bool, error)
}
