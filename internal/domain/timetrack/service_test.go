package timetrack

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

func (m *MockRepository) List(ctx context.Context) ([]Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockRepository) ListSince(ctx context.Context, since time.Time) ([]Session, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Session), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, s *Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, s *Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

var fixedNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	return newService(repo, func() time.Time { return fixedNow }, slog.Default())
}

func int64Ptr(v int64) *int64 { return &v }

func TestService_Start(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	sess, err := service.Start(context.Background(), StartInput{ProjectName: "Writing"})

	require.NoError(t, err)
	assert.True(t, sess.IsRunning)
	assert.Nil(t, sess.EndTime)
	assert.Equal(t, fixedNow, sess.StartTime)
	assert.Equal(t, "Writing", sess.ProjectName)
}

func TestService_Start_ProjectRequired(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)

	_, err := service.Start(context.Background(), StartInput{ProjectName: "  "})

	assert.ErrorIs(t, err, ErrProjectNameRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_StopWithDuration(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	running := &Session{ID: "1", ProjectName: "Writing", StartTime: fixedNow.Add(-10 * time.Minute), IsRunning: true}
	repo.On("Get", mock.Anything, "1").Return(running, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	sess, err := service.Update(context.Background(), "1", UpdateInput{Duration: int64Ptr(120)})

	require.NoError(t, err)
	assert.False(t, sess.IsRunning)
	assert.Equal(t, int64(120), sess.Duration)
	require.NotNil(t, sess.EndTime)
	assert.Equal(t, fixedNow, *sess.EndTime)
}

func TestService_Update_StopComputesDuration(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	running := &Session{ID: "1", StartTime: fixedNow.Add(-90 * time.Second), IsRunning: true}
	repo.On("Get", mock.Anything, "1").Return(running, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	sess, err := service.Update(context.Background(), "1", UpdateInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(90), sess.Duration)
}

func TestService_Update_StoppedNeverRestarts(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	end := fixedNow.Add(-time.Hour)
	stopped := &Session{ID: "1", StartTime: end.Add(-time.Hour), EndTime: &end, Duration: 3600}
	repo.On("Get", mock.Anything, "1").Return(stopped, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	notes := "edited"
	sess, err := service.Update(context.Background(), "1", UpdateInput{Notes: &notes})

	require.NoError(t, err)
	assert.False(t, sess.IsRunning)
	assert.Equal(t, end, *sess.EndTime)
	assert.Equal(t, int64(3600), sess.Duration)
	assert.Equal(t, "edited", sess.Notes)
}

func TestService_Update_StoppedEditEndTimeRecomputes(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	start := fixedNow.Add(-2 * time.Hour)
	end := fixedNow.Add(-time.Hour)
	stopped := &Session{ID: "1", StartTime: start, EndTime: &end, Duration: 3600}
	repo.On("Get", mock.Anything, "1").Return(stopped, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newEnd := start.Add(30 * time.Minute)
	sess, err := service.Update(context.Background(), "1", UpdateInput{EndTime: &newEnd})

	require.NoError(t, err)
	assert.Equal(t, int64(1800), sess.Duration)
}

func TestService_Update_Validation(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	running := &Session{ID: "1", StartTime: fixedNow, IsRunning: true}
	repo.On("Get", mock.Anything, "1").Return(running, nil)

	_, err := service.Update(context.Background(), "1", UpdateInput{Duration: int64Ptr(-1)})
	assert.ErrorIs(t, err, ErrNegativeDuration)

	before := fixedNow.Add(-time.Minute)
	_, err = service.Update(context.Background(), "1", UpdateInput{EndTime: &before})
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	repo.On("Get", mock.Anything, "nope").Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), "nope", UpdateInput{})

	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Stats(t *testing.T) {
	repo := new(MockRepository)
	service := newTestService(repo)
	lastYear := time.Date(2023, 12, 31, 10, 0, 0, 0, time.UTC)
	sessions := []Session{
		{ProjectName: "Writing", StartTime: time.Date(2024, 5, 14, 9, 0, 0, 0, time.UTC), Duration: 600},
		{ProjectName: "Writing", StartTime: time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC), Duration: 300},
		{ProjectName: "Coding", StartTime: lastYear, Duration: 100},
		{ProjectName: "Coding", StartTime: fixedNow.Add(-time.Minute), IsRunning: true},
	}
	repo.On("ListSince", mock.Anything, time.Time{}).Return(sessions, nil)

	stats, err := service.Stats(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, RangeAll, stats.Range)
	assert.Equal(t, int64(1060), stats.TotalSeconds)
	assert.Equal(t, 4, stats.Sessions)
	assert.Equal(t, []ProjectTotal{
		{ProjectName: "Writing", Seconds: 900, Sessions: 2},
		{ProjectName: "Coding", Seconds: 160, Sessions: 2},
	}, stats.ByProject)
	assert.Equal(t, []PeriodTotal{{Period: "2023", Seconds: 100}, {Period: "2024", Seconds: 960}}, stats.ByYear)
	assert.Equal(t, []PeriodTotal{{Period: "2024-04", Seconds: 300}, {Period: "2024-05", Seconds: 660}}, stats.ByMonth)
}

func TestService_Stats_InvalidRange(t *testing.T) {
	service := newTestService(new(MockRepository))

	_, err := service.Stats(context.Background(), "decade")

	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestRange_Since(t *testing.T) {
	// 2024-05-15 среда
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), RangeToday.Since(fixedNow))
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), RangeWeek.Since(fixedNow))
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), RangeMonth.Since(fixedNow))
	assert.True(t, RangeAll.Since(fixedNow).IsZero())
}
