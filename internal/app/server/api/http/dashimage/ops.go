package dashimage

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/form"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard-images-list",
		Method:      http.MethodGet,
		Path:        "/api/dashboard-images",
		Summary:     "Изображения дашборда",
		Tags:        []string{"dashboard-images"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) uploadOp() huma.Operation {
	return huma.Operation{
		OperationID:      "dashboard-images-upload",
		Method:           http.MethodPost,
		Path:             "/api/dashboard-images",
		DefaultStatus:    http.StatusCreated,
		Summary:          "Загрузить изображение",
		Description:      "multipart/form-data с файлом image.",
		Tags:             []string{"dashboard-images"},
		RequestBody:      form.RequestBody("multipart/form-data с файлом image"),
		SkipValidateBody: true,
		MaxBodyBytes:     h.maxBody,
		Middlewares:      h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "dashboard-images-delete",
		Method:        http.MethodDelete,
		Path:          "/api/dashboard-images/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Удалить изображение",
		Tags:          []string{"dashboard-images"},
		Middlewares:   h.middleware,
	}
}
