package todo

import "github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"

type listOutput struct {
	Body []todo.Todo
}

type idInput struct {
	ID string `path:"id" doc:"ID задачи"`
}

type output struct {
	Body *todo.Todo
}
