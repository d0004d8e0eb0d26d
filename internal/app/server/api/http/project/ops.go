package project

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-list",
		Method:      http.MethodGet,
		Path:        "/api/projects",
		Summary:     "Список проектов",
		Description: "Недавно обновленные первыми.",
		Tags:        []string{"projects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "projects-create",
		Method:        http.MethodPost,
		Path:          "/api/projects",
		DefaultStatus: http.StatusCreated,
		Summary:       "Создать проект",
		Tags:          []string{"projects"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-find",
		Method:      http.MethodGet,
		Path:        "/api/projects/{id}",
		Summary:     "Получить проект",
		Tags:        []string{"projects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "projects-update",
		Method:      http.MethodPatch,
		Path:        "/api/projects/{id}",
		Summary:     "Обновить проект",
		Tags:        []string{"projects"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "projects-delete",
		Method:        http.MethodDelete,
		Path:          "/api/projects/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить проект",
		Tags:          []string{"projects"},
		Middlewares:   h.middleware,
	}
}
