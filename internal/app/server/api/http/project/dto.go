package project

import (
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/project"
)

type listOutput struct {
	Body []project.Project
}

type idInput struct {
	ID string `path:"id" doc:"ID проекта"`
}

type projectItem struct {
	Text      string     `json:"text,omitempty" doc:"Текст задачи, пустые отбрасываются"`
	Completed bool       `json:"completed,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

type projectRequest struct {
	Name        *string       `json:"name,omitempty" doc:"Название"`
	Description *string       `json:"description,omitempty" doc:"Описание"`
	Status      *string       `json:"status,omitempty" doc:"active или completed"`
	Todos       []projectItem `json:"todos,omitempty" doc:"Задачи проекта, при обновлении заменяют весь список"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

type createInput struct {
	Body projectRequest
}

type updateInput struct {
	ID   string `path:"id" doc:"ID проекта"`
	Body projectRequest
}

type output struct {
	Body *project.Project
}

func (r projectRequest) items() []project.ItemInput {
	if r.Todos == nil {
		return nil
	}
	items := make([]project.ItemInput, 0, len(r.Todos))
	for _, it := range r.Todos {
		items = append(items, project.ItemInput{
			Text:      it.Text,
			Completed: it.Completed,
			CreatedAt: it.CreatedAt,
		})
	}
	return items
}

func (r projectRequest) createInput() project.CreateInput {
	in := project.CreateInput{Todos: r.items()}
	if r.Name != nil {
		in.Name = *r.Name
	}
	if r.Description != nil {
		in.Description = *r.Description
	}
	if r.Status != nil {
		in.Status = project.Status(*r.Status)
	}
	return in
}

func (r projectRequest) updateInput() project.UpdateInput {
	in := project.UpdateInput{
		Name:        r.Name,
		Description: r.Description,
		Todos:       r.items(),
	}
	if r.Status != nil {
		status := project.Status(*r.Status)
		in.Status = &status
	}
	return in
}
