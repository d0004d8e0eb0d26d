package event

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/event"

type listInput struct {
	Date  string `query:"date" doc:"События за день, YYYY-MM-DD"`
	Month string `query:"month" doc:"События за месяц, YYYY-MM"`
}

type listOutput struct {
	Body []event.Event
}

type idInput struct {
	ID string `path:"id" doc:"ID события"`
}

type eventRequest struct {
	Title       *string `json:"title,omitempty" doc:"Название"`
	Date        *string `json:"date,omitempty" doc:"Дата YYYY-MM-DD"`
	Description *string `json:"description,omitempty" doc:"Описание"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

type createInput struct {
	Body eventRequest
}

type updateInput struct {
	ID   string `path:"id" doc:"ID события"`
	Body eventRequest
}

type output struct {
	Body *event.Event
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
