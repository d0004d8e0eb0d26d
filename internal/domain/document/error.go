package document

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

var (
	ErrNotFound        = apperr.NotFound("document_not_found", "Document not found")
	ErrTitleRequired   = apperr.Validation("title_required", "Document title is required")
	ErrInvalidType     = apperr.Validation("invalid_type", "Type must be text or diagram")
	ErrInvalidDiagram  = apperr.Validation("invalid_diagram", "Diagram data must be valid JSON")
	ErrNothingToUpdate = apperr.Validation("nothing_to_update", "No fields to update")
)
