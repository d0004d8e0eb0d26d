package todo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/form"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-list",
		Method:      http.MethodGet,
		Path:        "/api/todos",
		Summary:     "Список задач",
		Description: "Новые задачи первыми.",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:      "todos-create",
		Method:           http.MethodPost,
		Path:             "/api/todos",
		DefaultStatus:    http.StatusCreated,
		Summary:          "Создать задачу",
		Description:      "Поля text, completed и необязательный файл image.",
		Tags:             []string{"todos"},
		RequestBody:      form.RequestBody("JSON или multipart/form-data"),
		SkipValidateBody: true,
		MaxBodyBytes:     h.maxBody,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-find",
		Method:      http.MethodGet,
		Path:        "/api/todos/{id}",
		Summary:     "Получить задачу",
		Tags:        []string{"todos"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:      "todos-update",
		Method:           http.MethodPatch,
		Path:             "/api/todos/{id}",
		Summary:          "Обновить задачу",
		Description:      "Частичное обновление. Новый файл image важнее флага removeImage.",
		Tags:             []string{"todos"},
		RequestBody:      form.RequestBody("JSON или multipart/form-data"),
		SkipValidateBody: true,
		MaxBodyBytes:     h.maxBody,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "todos-delete",
		Method:        http.MethodDelete,
		Path:          "/api/todos/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить задачу",
		Tags:          []string{"todos"},
		Middlewares:   h.middleware,
	}
}
