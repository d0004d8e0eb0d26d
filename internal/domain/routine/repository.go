package routine

import "context"

type Repository interface {
	List(ctx context.Context) ([]Routine, error)
	Get(ctx context.Context, id string) (*Routine, error)
	Create(ctx context.Context, r *Routine) error
	Update(ctx context.Context, r *Routine) error
	Delete(ctx context.Context, id string) (bool, error)
}
