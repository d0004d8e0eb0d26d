package document

import "context"

type Repository interface {
	List(ctx context.Context) ([]Document, error)
	Get(ctx context.Context, id string) (*Document, error)
	Create(ctx context.Context, d *Document) error
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id string) (bool, error)
}
