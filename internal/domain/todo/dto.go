package todo

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/payload"

type CreateInput struct {
	Text      string
	Completed bool
	Image     []byte
}

// UpdateInput пустой Text и nil Completed не меняют запись.
type UpdateInput struct {
	Text        string
	Completed   *bool
	Image       []byte
	RemoveImage bool
}

func (in UpdateInput) empty() bool {
	return in.Text == "" && in.Completed == nil && len(in.Image) == 0 && !in.RemoveImage
}

func NewCreateInput(p *payload.Payload) CreateInput {
	return CreateInput{
		Text:      p.String("text"),
		Completed: p.Bool("completed", false),
		Image:     imageData(p),
	}
}

func NewUpdateInput(p *payload.Payload) UpdateInput {
	return UpdateInput{
		Text:        p.String("text"),
		Completed:   p.OptBool("completed"),
		Image:       imageData(p),
		RemoveImage: p.Bool("removeImage", false),
	}
}

func imageData(p *payload.Payload) []byte {
	if p.File == nil {
		return nil
	}
	return p.File.Data
}
