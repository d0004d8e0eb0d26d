// Package form описывает тела запросов, которые принимают JSON
// или multipart/form-data с файлом изображения.
package form

import (
	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/payload"
)

// Input входное тело без разбора huma.
type Input struct {
	ContentType string `header:"Content-Type"`
	RawBody     []byte
}

// IDInput то же тело с id записи в пути.
type IDInput struct {
	ID          string `path:"id" doc:"ID записи"`
	ContentType string `header:"Content-Type"`
	RawBody     []byte
}

// RequestBody описание тела для OpenAPI. Операция с ним должна ставить
// SkipValidateBody: иначе huma декодирует тело по Content-Type и отвечает
// 415 на multipart.
func RequestBody(description string) *huma.RequestBody {
	object := func() *huma.MediaType {
		return &huma.MediaType{Schema: &huma.Schema{Type: huma.TypeObject, AdditionalProperties: true}}
	}
	return &huma.RequestBody{
		Description: description,
		Content: map[string]*huma.MediaType{
			"application/json":    object(),
			"multipart/form-data": object(),
		},
	}
}

// Parse разбирает тело; ошибки разбора становятся ответом 400.
func Parse(log *slog.Logger, contentType string, body []byte) (*payload.Payload, error) {
	p, err := payload.Parse(contentType, body)
	if err != nil {
		return nil, apierr.From(log, err)
	}
	return p, nil
}
