package event

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id string) (bool, error)
}
