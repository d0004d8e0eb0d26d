package event

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "events-list",
		Method:      http.MethodGet,
		Path:        "/api/events",
		Summary:     "Список событий",
		Description: "События по возрастанию даты, с фильтром по дню или месяцу.",
		Tags:        []string{"events"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "events-create",
		Method:        http.MethodPost,
		Path:          "/api/events",
		DefaultStatus: http.StatusCreated,
		Summary:       "Создать событие",
		Tags:          []string{"events"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "events-find",
		Method:      http.MethodGet,
		Path:        "/api/events/{id}",
		Summary:     "Получить событие",
		Tags:        []string{"events"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "events-update",
		Method:      http.MethodPut,
		Path:        "/api/events/{id}",
		Summary:     "Обновить событие",
		Description: "Меняет только переданные поля.",
		Tags:        []string{"events"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "events-delete",
		Method:        http.MethodDelete,
		Path:          "/api/events/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить событие",
		Tags:          []string{"events"},
		Middlewares:   h.middleware,
	}
}
