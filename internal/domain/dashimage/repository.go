package dashimage

import "context"

type Repository interface {
	List(ctx context.Context) ([]Image, error)
	Get(ctx context.Context, id string) (*Image, error)
	Create(ctx context.Context, img *Image) error
	Delete(ctx context.Context, id string) (bool, error)
}
