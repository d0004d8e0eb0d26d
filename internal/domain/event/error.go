package event

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound        = apperr.NotFound("event_not_found", "Event not found")
	ErrRequiredFields  = apperr.Validation("title_date_required", "Title and date are required")
	ErrInvalidDate     = apperr.Validation("invalid_date", "Date must be in YYYY-MM-DD format")
	ErrInvalidMonth    = apperr.Validation("invalid_month", "Month must be in YYYY-MM format")
	ErrNothingToUpdate = apperr.Validation("nothing_to_update", "No fields to update")
)
