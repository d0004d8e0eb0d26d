package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/api/documents",
		Summary:     "Список документов",
		Description: "Недавно измененные первыми.",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "documents-create",
		Method:        http.MethodPost,
		Path:          "/api/documents",
		DefaultStatus: http.StatusCreated,
		Summary:       "Создать документ",
		Tags:          []string{"documents"},
		MaxBodyBytes:  h.maxBody,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-find",
		Method:      http.MethodGet,
		Path:        "/api/documents/{id}",
		Summary:     "Получить документ",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID:  "documents-update",
		Method:       http.MethodPatch,
		Path:         "/api/documents/{id}",
		Summary:      "Обновить документ",
		Tags:         []string{"documents"},
		MaxBodyBytes: h.maxBody,
		Middlewares:  h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "documents-delete",
		Method:        http.MethodDelete,
		Path:          "/api/documents/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить документ",
		Tags:          []string{"documents"},
		Middlewares:   h.middleware,
	}
}
