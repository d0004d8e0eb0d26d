package routine

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/form"
)

const fieldsDoc = "Поля name, date, startTime, endTime, links, description, updated, pinned, removeImage и файл image."

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "routines-list",
		Method:      http.MethodGet,
		Path:        "/api/routines",
		Summary:     "Список записей распорядка",
		Description: "Закрепленные первыми, затем по дате и времени начала.",
		Tags:        []string{"routines"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:      "routines-create",
		Method:           http.MethodPost,
		Path:             "/api/routines",
		DefaultStatus:    http.StatusCreated,
		Summary:          "Создать запись распорядка",
		Description:      fieldsDoc,
		Tags:             []string{"routines"},
		RequestBody:      form.RequestBody("JSON или multipart/form-data"),
		SkipValidateBody: true,
		MaxBodyBytes:     h.maxBody,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "routines-find",
		Method:      http.MethodGet,
		Path:        "/api/routines/{id}",
		Summary:     "Получить запись распорядка",
		Tags:        []string{"routines"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) replaceOp() huma.Operation {
	return huma.Operation{
		OperationID:      "routines-replace",
		Method:           http.MethodPut,
		Path:             "/api/routines/{id}",
		Summary:          "Заменить запись распорядка",
		Description:      "Требует name, date, startTime и endTime. " + fieldsDoc,
		Tags:             []string{"routines"},
		RequestBody:      form.RequestBody("JSON или multipart/form-data"),
		SkipValidateBody: true,
		MaxBodyBytes:     h.maxBody,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) patchOp() huma.Operation {
	return huma.Operation{
		OperationID:      "routines-patch",
		Method:           http.MethodPatch,
		Path:             "/api/routines/{id}",
		Summary:          "Частично обновить запись распорядка",
		Description:      "Например, закрепить или открепить запись полем pinned.",
		Tags:             []string{"routines"},
		RequestBody:      form.RequestBody("JSON или multipart/form-data"),
		SkipValidateBody: true,
		MaxBodyBytes:     h.maxBody,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "routines-delete",
		Method:        http.MethodDelete,
		Path:          "/api/routines/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить запись распорядка",
		Tags:          []string{"routines"},
		Middlewares:   h.middleware,
	}
}
