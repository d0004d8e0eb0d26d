package routine

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound        = apperr.NotFound("routine_not_found", "Routine not found")
	ErrRequiredFields  = apperr.Validation("routine_fields_required", "Name, date, start time, and end time are required.")
	ErrPinnedRequired  = apperr.Validation("pinned_required", "Pinned state required")
	ErrNothingToUpdate = apperr.Validation("nothing_to_update", "No fields to update")
)
