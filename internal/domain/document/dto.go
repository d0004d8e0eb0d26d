package document

import "encoding/json"

type CreateInput struct {
	Title       string
	Type        Type
	Content     string
	DiagramData json.RawMessage
}

// UpdateInput nil поля не меняются.
type UpdateInput struct {
	Title       *string
	Type        *Type
	Content     *string
	DiagramData json.RawMessage
}

func (in UpdateInput) empty() bool {
	return in.Title == nil && in.Type == nil && in.Content == nil && in.DiagramData == nil
}
