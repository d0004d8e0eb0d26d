package attachment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

var pngData = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, data []byte, folder string) (Ref, error) {
	args := m.Called(ctx, data, folder)
	return args.Get(0).(Ref), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}

func newManager(storage Storage) *Manager {
	return NewManager(storage, time.Second, slog.Default())
}

func TestManager_Attach(t *testing.T) {
	st := new(MockStorage)
	m := newManager(st)
	want := Ref{URL: "https://img/new.png", StorageID: "todo_items/new"}
	st.On("Upload", mock.Anything, pngData, FolderTodo).Return(want, nil)

	ref, err := m.Attach(context.Background(), pngData, FolderTodo)

	require.NoError(t, err)
	assert.Equal(t, want, ref)
	st.AssertExpectations(t)
}

func TestManager_Attach_NotImage(t *testing.T) {
	st := new(MockStorage)
	m := newManager(st)

	_, err := m.Attach(context.Background(), []byte("plain text"), FolderTodo)

	assert.ErrorIs(t, err, ErrUnsupportedImage)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	st.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestManager_Attach_NotConfigured(t *testing.T) {
	m := newManager(nil)

	_, err := m.Attach(context.Background(), pngData, FolderDashboard)

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestManager_Attach_Timeout(t *testing.T) {
	st := new(MockStorage)
	m := newManager(st)
	st.On("Upload", mock.Anything, pngData, FolderDashboard).Return(Ref{}, context.DeadlineExceeded)

	_, err := m.Attach(context.Background(), pngData, FolderDashboard)

	assert.ErrorIs(t, err, apperr.ErrTimeout)
	assert.Equal(t, "Image upload timed out", apperr.Message(err, ""))
}

func TestManager_Attach_UpstreamError(t *testing.T) {
	st := new(MockStorage)
	m := newManager(st)
	st.On("Upload", mock.Anything, pngData, FolderTodo).Return(Ref{}, errors.New("bad credentials"))

	_, err := m.Attach(context.Background(), pngData, FolderTodo)

	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestManager_AttachOptional(t *testing.T) {
	t.Run("no data", func(t *testing.T) {
		st := new(MockStorage)
		ref, err := newManager(st).AttachOptional(context.Background(), nil, FolderTodo)
		require.NoError(t, err)
		assert.True(t, ref.IsZero())
		st.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage not configured", func(t *testing.T) {
		ref, err := newManager(nil).AttachOptional(context.Background(), pngData, FolderTodo)
		require.NoError(t, err)
		assert.True(t, ref.IsZero())
	})
}

func TestManager_Apply(t *testing.T) {
	old := Ref{URL: "https://img/old.png", StorageID: "old-id"}

	t.Run("remove clears reference on commit", func(t *testing.T) {
		st := new(MockStorage)
		m := newManager(st)
		st.On("Delete", mock.Anything, "old-id").Return(nil)

		change, err := m.Apply(context.Background(), old, nil, true, FolderTodo)
		require.NoError(t, err)
		assert.True(t, change.Ref.IsZero())

		m.Wait()
		st.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

		m.Commit(context.Background(), change)
		m.Wait()
		st.AssertNumberOfCalls(t, "Delete", 1)
	})

	t.Run("new file wins over remove", func(t *testing.T) {
		st := new(MockStorage)
		m := newManager(st)
		fresh := Ref{URL: "https://img/new.png", StorageID: "new-id"}
		st.On("Upload", mock.Anything, pngData, FolderTodo).Return(fresh, nil)
		st.On("Delete", mock.Anything, "old-id").Return(nil)

		change, err := m.Apply(context.Background(), old, pngData, true, FolderTodo)
		require.NoError(t, err)
		assert.Equal(t, fresh, change.Ref)

		m.Commit(context.Background(), change)
		m.Wait()
		st.AssertNumberOfCalls(t, "Delete", 1)
		st.AssertCalled(t, "Delete", mock.Anything, "old-id")
	})

	t.Run("rollback deletes only the new upload", func(t *testing.T) {
		st := new(MockStorage)
		m := newManager(st)
		fresh := Ref{URL: "https://img/new.png", StorageID: "new-id"}
		st.On("Upload", mock.Anything, pngData, FolderRoutine).Return(fresh, nil)
		st.On("Delete", mock.Anything, "new-id").Return(nil)

		change, err := m.Apply(context.Background(), old, pngData, false, FolderRoutine)
		require.NoError(t, err)

		m.Rollback(context.Background(), change)
		m.Wait()
		st.AssertNumberOfCalls(t, "Delete", 1)
		st.AssertNotCalled(t, "Delete", mock.Anything, "old-id")
	})

	t.Run("rollback after remove keeps old", func(t *testing.T) {
		st := new(MockStorage)
		m := newManager(st)

		change, err := m.Apply(context.Background(), old, nil, true, FolderTodo)
		require.NoError(t, err)

		m.Rollback(context.Background(), change)
		m.Wait()
		st.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("upload failure keeps current", func(t *testing.T) {
		st := new(MockStorage)
		m := newManager(st)
		st.On("Upload", mock.Anything, pngData, FolderRoutine).Return(Ref{}, errors.New("boom"))

		change, err := m.Apply(context.Background(), old, pngData, false, FolderRoutine)
		m.Wait()

		assert.ErrorIs(t, err, ErrUploadFailed)
		assert.Equal(t, old, change.Ref)
		st.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("nothing to do", func(t *testing.T) {
		st := new(MockStorage)
		m := newManager(st)

		change, err := m.Apply(context.Background(), old, nil, false, FolderTodo)
		require.NoError(t, err)
		assert.Equal(t, old, change.Ref)

		m.Commit(context.Background(), change)
		m.Wait()
		st.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("file without storage keeps current", func(t *testing.T) {
		change, err := newManager(nil).Apply(context.Background(), old, pngData, false, FolderTodo)
		require.NoError(t, err)
		assert.Equal(t, old, change.Ref)
	})
}

func TestIsImage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{name: "png", data: pngData, want: true},
		{name: "jpeg", data: []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), want: true},
		{name: "svg", data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"/>`), want: true},
		{name: "svg with prolog", data: []byte("<?xml version=\"1.0\"?>\n<!-- logo -->\n<SVG viewBox=\"0 0 1 1\"></SVG>"), want: true},
		{name: "heic", data: []byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00mif1heic"), want: true},
		{name: "avif", data: []byte("\x00\x00\x00\x1cftypavif\x00\x00\x00\x00avifmif1miaf"), want: true},
		{name: "heif by compatible brand", data: []byte("\x00\x00\x00\x14ftypmsf1\x00\x00\x00\x00heic"), want: true},
		{name: "mp4", data: []byte("\x00\x00\x00\x18ftypisom\x00\x00\x02\x00isomiso2"), want: false},
		{name: "plain text", data: []byte("plain text"), want: false},
		{name: "html", data: []byte("<html><body>hi</body></html>"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isImage(tt.data))
		})
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", ContentType(pngData))
	assert.Equal(t, "image/svg+xml", ContentType([]byte(`<svg viewBox="0 0 1 1"/>`)))
	assert.Equal(t, "image/heic", ContentType([]byte("\x00\x00\x00\x18ftypheic\x00\x00\x00\x00mif1heic")))
	assert.Equal(t, "image/heif", ContentType([]byte("\x00\x00\x00\x14ftypmif1\x00\x00\x00\x00miaf")))
	assert.Equal(t, "image/avif", ContentType([]byte("\x00\x00\x00\x1cftypavif\x00\x00\x00\x00avifmif1miaf")))
}

func TestManager_Attach_SVG(t *testing.T) {
	st := new(MockStorage)
	m := newManager(st)
	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`)
	want := Ref{URL: "https://img/logo.svg", StorageID: "dashboard_images/logo"}
	st.On("Upload", mock.Anything, svg, FolderDashboard).Return(want, nil)

	ref, err := m.Attach(context.Background(), svg, FolderDashboard)

	require.NoError(t, err)
	assert.Equal(t, want, ref)
}

func TestManager_Detach_ErrorSwallowed(t *testing.T) {
	st := new(MockStorage)
	m := newManager(st)
	st.On("Delete", mock.Anything, "gone").Return(errors.New("remote failure"))

	ctx, cancel := context.WithCancel(context.Background())
	m.Detach(ctx, "gone")
	cancel()
	m.Wait()

	st.AssertNumberOfCalls(t, "Delete", 1)
}

func TestManager_Detach_EmptyID(t *testing.T) {
	st := new(MockStorage)
	m := newManager(st)

	m.Detach(context.Background(), "")
	m.Wait()

	st.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
