package document

import (
	"encoding/json"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/document"
)

type listOutput struct {
	Body []document.Document
}

type idInput struct {
	ID string `path:"id" doc:"ID документа"`
}

type documentRequest struct {
	Title   *string `json:"title,omitempty" doc:"Название"`
	Type    *string `json:"type,omitempty" doc:"text или diagram"`
	Content *string `json:"content,omitempty" doc:"Состояние редактора или data-URL картинки"`
	// DiagramData null и отсутствие поля не различаются: данные не меняются.
	DiagramData any `json:"diagramData,omitempty" doc:"Произвольный JSON диаграммы"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

type createInput struct {
	Body documentRequest
}

type updateInput struct {
	ID   string `path:"id" doc:"ID документа"`
	Body documentRequest
}

type output struct {
	Body *document.Document
}

func (r documentRequest) diagram() (json.RawMessage, error) {
	if r.DiagramData == nil {
		return nil, nil
	}
	data, err := json.Marshal(r.DiagramData)
	if err != nil {
		return nil, document.ErrInvalidDiagram
	}
	return data, nil
}

func (r documentRequest) createInput() (document.CreateInput, error) {
	diagram, err := r.diagram()
	if err != nil {
		return document.CreateInput{}, err
	}
	in := document.CreateInput{DiagramData: diagram}
	if r.Title != nil {
		in.Title = *r.Title
	}
	if r.Type != nil {
		in.Type = document.Type(*r.Type)
	}
	if r.Content != nil {
		in.Content = *r.Content
	}
	return in, nil
}

func (r documentRequest) updateInput() (document.UpdateInput, error) {
	diagram, err := r.diagram()
	if err != nil {
		return document.UpdateInput{}, err
	}
	in := document.UpdateInput{
		Title:       r.Title,
		Content:     r.Content,
		DiagramData: diagram,
	}
	if r.Type != nil {
		t := document.Type(*r.Type)
		in.Type = &t
	}
	return in, nil
}
