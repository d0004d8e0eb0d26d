package project

import (
	"context"
	"testing"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Project), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Project), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, p *Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create_Defaults(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := service.Create(context.Background(), CreateInput{
		Name:  " Thesis ",
		Todos: []ItemInput{{Text: "outline"}, {Text: "  "}, {Text: "draft", Completed: true}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Thesis", p.Name)
	assert.Equal(t, StatusActive, p.Status)
	require.Len(t, p.Todos, 2)
	assert.Equal(t, "outline", p.Todos[0].Text)
	assert.True(t, p.Todos[1].Completed)
	assert.False(t, p.Todos[0].CreatedAt.IsZero())
}

func TestService_Create_Validation(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	_, err := service.Create(context.Background(), CreateInput{})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = service.Create(context.Background(), CreateInput{Name: "x", Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_ReplacesTodos(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := &Project{
		ID:     "1",
		Name:   "Thesis",
		Status: StatusActive,
		Todos:  []Item{{Text: "old", CreatedAt: created}},
	}
	repo.On("Get", mock.Anything, "1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	status := StatusCompleted
	p, err := service.Update(context.Background(), "1", UpdateInput{
		Status: &status,
		Todos:  []ItemInput{{Text: "new", CreatedAt: &created}},
	})

	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, p.Status)
	assert.Equal(t, "Thesis", p.Name)
	assert.Equal(t, []Item{{Text: "new", CreatedAt: created}}, p.Todos)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	name := "x"
	repo.On("Get", mock.Anything, "nope").Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), "nope", UpdateInput{Name: &name})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Delete_Missing(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())
	repo.On("Delete", mock.Anything, "nope").Return(false, nil)

	err := service.Delete(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}
