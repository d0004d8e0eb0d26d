package project

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound        = apperr.NotFound("project_not_found", "Project not found")
	ErrNameRequired    = apperr.Validation("name_required", "Project name is required")
	ErrInvalidStatus   = apperr.Validation("invalid_status", "Status must be active or completed")
	ErrNothingToUpdate = apperr.Validation("nothing_to_update", "No fields to update")
)
