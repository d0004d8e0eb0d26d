package logger

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestLogger_Middleware(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID:   "remove",
		Method:        http.MethodDelete,
		Path:          "/api/todos/{id}",
		DefaultStatus: http.StatusNoContent,
		Middlewares:   huma.Middlewares{New(log).Middleware()},
	}, func(ctx context.Context, in *struct {
		ID string `path:"id"`
	}) (*struct{}, error) {
		return nil, nil
	})

	resp := api.Delete("/api/todos/42")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	out := buf.String()
	assert.Contains(t, out, `"component":"http_logger"`)
	assert.Contains(t, out, `"method":"DELETE"`)
	assert.Contains(t, out, `"path":"/api/todos/42"`)
	assert.Contains(t, out, `"status":204`)
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "fail",
		Method:      http.MethodGet,
		Path:        "/api/fail",
		Middlewares: huma.Middlewares{New(log).Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*struct{}, error) {
		return nil, huma.Error404NotFound("Todo not found")
	})

	resp := api.Get("/api/fail")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}
