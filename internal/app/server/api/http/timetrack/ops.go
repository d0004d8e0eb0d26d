package timetrack

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "timetracker-list",
		Method:      http.MethodGet,
		Path:        "/api/timetracker",
		Summary:     "Список сессий",
		Tags:        []string{"timetracker"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) startOp() huma.Operation {
	return huma.Operation{
		OperationID:   "timetracker-start",
		Method:        http.MethodPost,
		Path:          "/api/timetracker",
		DefaultStatus: http.StatusCreated,
		Summary:       "Запустить сессию",
		Tags:          []string{"timetracker"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "timetracker-stats",
		Method:      http.MethodGet,
		Path:        "/api/timetracker/stats",
		Summary:     "Статистика по времени",
		Description: "Итоги по проектам, годам и месяцам текущего года.",
		Tags:        []string{"timetracker"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "timetracker-find",
		Method:      http.MethodGet,
		Path:        "/api/timetracker/{id}",
		Summary:     "Получить сессию",
		Tags:        []string{"timetracker"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "timetracker-update",
		Method:      http.MethodPatch,
		Path:        "/api/timetracker/{id}",
		Summary:     "Остановить или изменить сессию",
		Description: "Запущенная сессия останавливается. У остановленной меняются заметки, длительность и время окончания.",
		Tags:        []string{"timetracker"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "timetracker-delete",
		Method:        http.MethodDelete,
		Path:          "/api/timetracker/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить сессию",
		Tags:          []string{"timetracker"},
		Middlewares:   h.middleware,
	}
}
