package timetrack

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound            = apperr.NotFound("session_not_found", "Session not found")
	ErrProjectNameRequired = apperr.Validation("project_name_required", "Project name is required")
	ErrNegativeDuration    = apperr.Validation("negative_duration", "Duration must not be negative")
	ErrEndBeforeStart      = apperr.Validation("end_before_start", "End time must not be before start time")
	ErrInvalidRange        = apperr.Validation("invalid_range", "Range must be one of today, week, month, all")
)
