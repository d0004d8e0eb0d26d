package bookmark

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound        = apperr.NotFound("bookmark_not_found", "Bookmark not found")
	ErrURLRequired     = apperr.Validation("url_required", "URL is required")
	ErrNothingToUpdate = apperr.Validation("nothing_to_update", "No fields to update")
)
