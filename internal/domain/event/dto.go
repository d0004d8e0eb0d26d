package event

type CreateInput struct {
	Title       string
	Date        string
	Description string
}

// UpdateInput nil поля не меняются.
type UpdateInput struct {
	Title       *string
	Date        *string
	Description *string
}

func (in UpdateInput) empty() bool {
	return in.Title == nil && in.Date == nil && in.Description == nil
}
