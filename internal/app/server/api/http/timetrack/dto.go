package timetrack

import (
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
)

type listOutput struct {
	Body []timetrack.Session
}

type idInput struct {
	ID string `path:"id" doc:"ID сессии"`
}

type startInput struct {
	Body struct {
		ProjectName string `json:"projectName,omitempty" doc:"Проект"`
		Notes       string `json:"notes,omitempty" doc:"Заметки"`

		_ struct{} `json:"-" additionalProperties:"true"`
	}
}

type updateInput struct {
	ID   string `path:"id" doc:"ID сессии"`
	Body struct {
		EndTime  *time.Time `json:"endTime,omitempty" doc:"Время окончания, по умолчанию сейчас"`
		Duration *int64     `json:"duration,omitempty" doc:"Длительность в секундах"`
		Notes    *string    `json:"notes,omitempty" doc:"Заметки"`

		_ struct{} `json:"-" additionalProperties:"true"`
	}
}

type statsInput struct {
	Range string `query:"range" doc:"today, week, month или all"`
}

type statsOutput struct {
	Body *timetrack.Stats
}

type output struct {
	Body *timetrack.Session
}
