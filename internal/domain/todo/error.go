package todo

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound        = apperr.NotFound("todo_not_found", "Todo not found")
	ErrTextRequired    = apperr.Validation("text_required", "Text is required")
	ErrNothingToUpdate = apperr.Validation("nothing_to_update", "No fields to update")
)
