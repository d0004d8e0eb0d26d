package bookmark

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-list",
		Method:      http.MethodGet,
		Path:        "/api/bookmarks",
		Summary:     "Список закладок",
		Description: "Закрепленные первыми, затем новые.",
		Tags:        []string{"bookmarks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "bookmarks-create",
		Method:        http.MethodPost,
		Path:          "/api/bookmarks",
		DefaultStatus: http.StatusCreated,
		Summary:       "Добавить закладку",
		Tags:          []string{"bookmarks"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "bookmarks-update",
		Method:      http.MethodPatch,
		Path:        "/api/bookmarks/{id}",
		Summary:     "Изменить закладку",
		Tags:        []string{"bookmarks"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "bookmarks-delete",
		Method:        http.MethodDelete,
		Path:          "/api/bookmarks/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить закладку",
		Tags:          []string{"bookmarks"},
		Middlewares:   h.middleware,
	}
}
