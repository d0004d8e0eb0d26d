package document

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/document"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]document.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Document), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id string) (*document.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, in document.CreateInput) (*document.Document, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, in document.UpdateInput) (*document.Document, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*document.Document), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setup(t *testing.T) (humatest.TestAPI, *MockService) {
	t.Helper()
	_, api := humatest.New(t)
	svc := new(MockService)
	NewHandler(svc, 1<<20, slog.Default(), nil).SetupRoutes(api)
	return api, svc
}

func TestHandler_Create_Diagram(t *testing.T) {
	api, svc := setup(t)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(in document.CreateInput) bool {
		return in.Title == "Flow" && in.Type == document.TypeDiagram && string(in.DiagramData) == `{"nodes":[1,2]}`
	})).Return(&document.Document{ID: "01J", Title: "Flow", Type: document.TypeDiagram}, nil)

	resp := api.Post("/api/documents", map[string]any{
		"title":       "Flow",
		"type":        "diagram",
		"diagramData": map[string]any{"nodes": []int{1, 2}},
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	svc.AssertExpectations(t)
}

func TestHandler_Create_TitleRequired(t *testing.T) {
	api, svc := setup(t)
	svc.On("Create", mock.Anything, document.CreateInput{Content: "hello"}).Return(nil, document.ErrTitleRequired)

	resp := api.Post("/api/documents", map[string]any{"content": "hello"})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error":"Document title is required"`)
}

func TestHandler_Update(t *testing.T) {
	api, svc := setup(t)
	content := "updated"
	svc.On("Update", mock.Anything, "01J", document.UpdateInput{Content: &content}).
		Return(&document.Document{ID: "01J", Title: "Notes", Content: "updated"}, nil)
	svc.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, document.ErrNotFound)

	resp := api.Patch("/api/documents/01J", map[string]any{"content": "updated"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"content":"updated"`)

	resp = api.Patch("/api/documents/missing", map[string]any{"content": "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	api, svc := setup(t)
	svc.On("Delete", mock.Anything, "missing").Return(document.ErrNotFound)

	resp := api.Delete("/api/documents/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
