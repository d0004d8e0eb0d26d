package todo

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]todo.Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]todo.Todo), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id string) (*todo.Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, in todo.CreateInput) (*todo.Todo, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, in todo.UpdateInput) (*todo.Todo, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*todo.Todo), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func setup(t *testing.T) (humatest.TestAPI, *MockService) {
	t.Helper()
	_, api := humatest.New(t)
	svc := new(MockService)
	NewHandler(svc, 1<<20, slog.Default(), nil).SetupRoutes(api)
	return api, svc
}

// multipartBody собирает форму с полями и необязательным файлом image.
func multipartBody(t *testing.T, fields map[string]string, image []byte) (string, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		part, err := w.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return "Content-Type: " + w.FormDataContentType(), &buf
}

func TestHandler_Create_JSON(t *testing.T) {
	api, svc := setup(t)
	svc.On("Create", mock.Anything, todo.CreateInput{Text: "buy milk", Completed: true}).
		Return(&todo.Todo{ID: "01J", Text: "buy milk", Completed: true}, nil)

	resp := api.Post("/api/todos", map[string]any{"text": "  buy milk ", "completed": "TRUE"})

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"text":"buy milk"`)
	svc.AssertExpectations(t)
}

func TestHandler_Create_Multipart(t *testing.T) {
	api, svc := setup(t)
	svc.On("Create", mock.Anything, todo.CreateInput{Text: "receipt", Image: pngHeader}).
		Return(&todo.Todo{ID: "01J", Text: "receipt", ImageURL: "https://img/1.png", ImagePublicID: "todo_items/1"}, nil)

	header, body := multipartBody(t, map[string]string{"text": "receipt", "completed": "maybe"}, pngHeader)
	resp := api.Post("/api/todos", header, body)

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"imagePublicId":"todo_items/1"`)
	svc.AssertExpectations(t)
}

func TestHandler_Create_Errors(t *testing.T) {
	t.Run("text required", func(t *testing.T) {
		api, svc := setup(t)
		svc.On("Create", mock.Anything, todo.CreateInput{}).Return(nil, todo.ErrTextRequired)

		resp := api.Post("/api/todos", map[string]any{"text": "   "})

		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), `"error":"Text is required"`)
	})

	t.Run("upload timeout", func(t *testing.T) {
		api, svc := setup(t)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, attachment.ErrUploadTimeout)

		header, body := multipartBody(t, map[string]string{"text": "x"}, pngHeader)
		resp := api.Post("/api/todos", header, body)

		require.Equal(t, http.StatusGatewayTimeout, resp.Code)
		assert.Contains(t, resp.Body.String(), `"error":"Image upload timed out"`)
	})

	t.Run("broken multipart", func(t *testing.T) {
		api, svc := setup(t)

		resp := api.Post("/api/todos", "Content-Type: multipart/form-data", bytes.NewReader([]byte("--x")))

		require.Equal(t, http.StatusBadRequest, resp.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("new file wins over removeImage", func(t *testing.T) {
		api, svc := setup(t)
		svc.On("Update", mock.Anything, "01J", todo.UpdateInput{Image: pngHeader, RemoveImage: true}).
			Return(&todo.Todo{ID: "01J", Text: "receipt", ImageURL: "https://img/2.png"}, nil)

		header, body := multipartBody(t, map[string]string{"removeImage": "true"}, pngHeader)
		resp := api.Patch("/api/todos/01J", header, body)

		require.Equal(t, http.StatusOK, resp.Code)
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		api, svc := setup(t)
		done := true
		svc.On("Update", mock.Anything, "missing", todo.UpdateInput{Completed: &done}).Return(nil, todo.ErrNotFound)

		resp := api.Patch("/api/todos/missing", map[string]any{"completed": true})

		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), `"error":"Todo not found"`)
	})
}

func TestHandler_ListDelete(t *testing.T) {
	api, svc := setup(t)
	svc.On("List", mock.Anything).Return([]todo.Todo{}, nil)
	svc.On("Delete", mock.Anything, "gone").Return(nil)

	resp := api.Get("/api/todos")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = api.Delete("/api/todos/gone")
	assert.Equal(t, http.StatusNoContent, resp.Code)
}
