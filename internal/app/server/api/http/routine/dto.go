package routine

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/routine"

type listOutput struct {
	Body []routine.Routine
}

type idInput struct {
	ID string `path:"id" doc:"ID записи распорядка"`
}

type output struct {
	Body *routine.Routine
}
