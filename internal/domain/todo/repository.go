package todo

import "context"

type Repository interface {
	List(ctx context.Context) ([]Todo, error)
	Get(ctx context.Context, id string) (*Todo, error)
	Create(ctx context.Context, t *Todo) error
	Update(ctx context.Context, t *Todo) error
	Delete(ctx context.Context, id string) (bool, error)
}
