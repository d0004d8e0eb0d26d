package bookmark

import "context"

type Repository interface {
	// List фильтрует по подстроке в title или url без учета регистра, пустой query без фильтра.
	List(ctx context.Context, query string) ([]Bookmark, error)
	Get(ctx context.Context, id string) (*Bookmark, error)
	Create(ctx context.Context, b *Bookmark) error
	Update(ctx context.Context, b *Bookmark) error
	Delete(ctx context.Context, id string) (bool, error)
}

// TitleFetcher достает заголовок страницы. Ошибки сводятся к пустой строке.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, url string) string
}
