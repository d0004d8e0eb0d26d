package project

import "time"

type ItemInput struct {
	Text      string
	Completed bool
	CreatedAt *time.Time
}

type CreateInput struct {
	Name        string
	Description string
	Status      Status
	Todos       []ItemInput
}

// UpdateInput Todos заменяет весь список, если не nil.
type UpdateInput struct {
	Name        *string
	Description *string
	Status      *Status
	Todos       []ItemInput
}

func (in UpdateInput) empty() bool {
	return in.Name == nil && in.Description == nil && in.Status == nil && in.Todos == nil
}
