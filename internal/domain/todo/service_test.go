package todo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/payload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

var pngData = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Todo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Todo), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Todo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Todo), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, t *Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, t *Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, data []byte, folder string) (attachment.Ref, error) {
	args := m.Called(ctx, data, folder)
	return args.Get(0).(attachment.Ref), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}

func newService(repo Repository, storage attachment.Storage) (Servicer, *attachment.Manager) {
	images := attachment.NewManager(storage, time.Second, slog.Default())
	return NewService(repo, images, slog.Default()), images
}

func TestNewCreateInput_FromMultipartFields(t *testing.T) {
	p := payload.FromFields(map[string]any{"text": " read ", "completed": "TRUE"})

	in := NewCreateInput(p)

	assert.Equal(t, "read", in.Text)
	assert.True(t, in.Completed)
	assert.Nil(t, in.Image)
}

func TestService_Create(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockStorage)
	service, _ := newService(repo, st)

	ref := attachment.Ref{URL: "https://img/a.png", StorageID: "todo_items/a"}
	st.On("Upload", mock.Anything, pngData, attachment.FolderTodo).Return(ref, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(t *Todo) bool {
		return t.Text == "buy milk" && t.ImagePublicID == "todo_items/a" && !t.Completed
	})).Return(nil)

	got, err := service.Create(context.Background(), CreateInput{Text: " buy milk ", Image: pngData})

	require.NoError(t, err)
	assert.Equal(t, "https://img/a.png", got.ImageURL)
	repo.AssertExpectations(t)
	st.AssertExpectations(t)
}

func TestService_Create_TextRequired(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockStorage)
	service, _ := newService(repo, st)

	_, err := service.Create(context.Background(), CreateInput{Text: "  ", Image: pngData})

	assert.ErrorIs(t, err, ErrTextRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	st.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_UploadFailure(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockStorage)
	service, _ := newService(repo, st)
	st.On("Upload", mock.Anything, pngData, attachment.FolderTodo).Return(attachment.Ref{}, errors.New("cloud down"))

	_, err := service.Create(context.Background(), CreateInput{Text: "x", Image: pngData})

	assert.ErrorIs(t, err, apperr.ErrUpstream)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_WithoutStorage(t *testing.T) {
	repo := new(MockRepository)
	service, _ := newService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := service.Create(context.Background(), CreateInput{Text: "x", Image: pngData})

	require.NoError(t, err)
	assert.Empty(t, got.ImageURL)
}

func TestService_Update_ReplacesImage(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockStorage)
	service, images := newService(repo, st)

	existing := &Todo{ID: "1", Text: "walk", ImageURL: "https://img/old.png", ImagePublicID: "old"}
	fresh := attachment.Ref{URL: "https://img/new.png", StorageID: "new"}
	repo.On("Get", mock.Anything, "1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	st.On("Upload", mock.Anything, pngData, attachment.FolderTodo).Return(fresh, nil)
	st.On("Delete", mock.Anything, "old").Return(nil)

	got, err := service.Update(context.Background(), "1", UpdateInput{Image: pngData, RemoveImage: true})
	images.Wait()

	require.NoError(t, err)
	assert.Equal(t, "https://img/new.png", got.ImageURL)
	assert.Equal(t, "new", got.ImagePublicID)
	assert.Equal(t, "walk", got.Text)
	st.AssertNumberOfCalls(t, "Delete", 1)
}

func TestService_Update_WriteFailureKeepsOldImage(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockStorage)
	service, images := newService(repo, st)

	existing := &Todo{ID: "1", Text: "walk", ImageURL: "https://img/old.png", ImagePublicID: "old"}
	fresh := attachment.Ref{URL: "https://img/new.png", StorageID: "new"}
	repo.On("Get", mock.Anything, "1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	st.On("Upload", mock.Anything, pngData, attachment.FolderTodo).Return(fresh, nil)
	st.On("Delete", mock.Anything, "new").Return(nil)

	_, err := service.Update(context.Background(), "1", UpdateInput{Image: pngData})
	images.Wait()

	require.Error(t, err)
	st.AssertCalled(t, "Delete", mock.Anything, "new")
	st.AssertNotCalled(t, "Delete", mock.Anything, "old")
}

func TestService_Update_RemoveImage(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockStorage)
	service, images := newService(repo, st)

	existing := &Todo{ID: "1", Text: "walk", ImageURL: "https://img/old.png", ImagePublicID: "old"}
	repo.On("Get", mock.Anything, "1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	st.On("Delete", mock.Anything, "old").Return(errors.New("remote failure"))

	got, err := service.Update(context.Background(), "1", UpdateInput{RemoveImage: true})
	images.Wait()

	require.NoError(t, err)
	assert.Empty(t, got.ImageURL)
	assert.Empty(t, got.ImagePublicID)
}

func TestService_Update_Completed(t *testing.T) {
	repo := new(MockRepository)
	service, _ := newService(repo, nil)
	done := true

	repo.On("Get", mock.Anything, "1").Return(&Todo{ID: "1", Text: "walk"}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	got, err := service.Update(context.Background(), "1", UpdateInput{Completed: &done})

	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, "walk", got.Text)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service, _ := newService(repo, nil)
	done := true
	repo.On("Get", mock.Anything, "nope").Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), "nope", UpdateInput{Completed: &done})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	st := new(MockStorage)
	service, images := newService(repo, st)

	repo.On("Get", mock.Anything, "1").Return(&Todo{ID: "1", ImagePublicID: "img"}, nil).Once()
	repo.On("Delete", mock.Anything, "1").Return(true, nil).Once()
	repo.On("Get", mock.Anything, "1").Return(nil, ErrNotFound).Once()
	st.On("Delete", mock.Anything, "img").Return(nil)

	require.NoError(t, service.Delete(context.Background(), "1"))
	require.NoError(t, service.Delete(context.Background(), "1"))
	images.Wait()

	st.AssertNumberOfCalls(t, "Delete", 1)
	repo.AssertExpectations(t)
}
