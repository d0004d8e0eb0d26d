package dashimage

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound      = apperr.NotFound("image_not_found", "Image not found")
	ErrImageRequired = apperr.Validation("image_required", "No image file provided")
)
