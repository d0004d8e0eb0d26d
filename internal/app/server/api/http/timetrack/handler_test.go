package timetrack

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]timetrack.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]timetrack.Session), args.Error(1)
}

func (m *MockService) Find(ctx context.Context, id string) (*timetrack.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetrack.Session), args.Error(1)
}

func (m *MockService) Start(ctx context.Context, in timetrack.StartInput) (*timetrack.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetrack.Session), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, in timetrack.UpdateInput) (*timetrack.Session, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetrack.Session), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) Stats(ctx context.Context, r timetrack.Range) (*timetrack.Stats, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*timetrack.Stats), args.Error(1)
}

func setup(t *testing.T) (humatest.TestAPI, *MockService) {
	t.Helper()
	_, api := humatest.New(t)
	svc := new(MockService)
	NewHandler(svc, slog.Default(), nil).SetupRoutes(api)
	return api, svc
}

func TestHandler_StartStop(t *testing.T) {
	api, svc := setup(t)
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Minute)

	svc.On("Start", mock.Anything, timetrack.StartInput{ProjectName: "Writing"}).
		Return(&timetrack.Session{ID: "01J", ProjectName: "Writing", StartTime: start, IsRunning: true}, nil)

	resp := api.Post("/api/timetracker", map[string]any{"projectName": "Writing"})

	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"isRunning":true`)
	assert.NotContains(t, resp.Body.String(), `"endTime"`)

	duration := int64(120)
	svc.On("Update", mock.Anything, "01J", timetrack.UpdateInput{Duration: &duration}).
		Return(&timetrack.Session{ID: "01J", ProjectName: "Writing", StartTime: start, EndTime: &end, Duration: 120}, nil)

	resp = api.Patch("/api/timetracker/01J", map[string]any{"duration": 120})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"isRunning":false`)
	assert.Contains(t, resp.Body.String(), `"duration":120`)
	assert.Contains(t, resp.Body.String(), `"endTime":"2025-03-01T10:02:00Z"`)
}

func TestHandler_Start_ProjectRequired(t *testing.T) {
	api, svc := setup(t)
	svc.On("Start", mock.Anything, timetrack.StartInput{}).Return(nil, timetrack.ErrProjectNameRequired)

	resp := api.Post("/api/timetracker", map[string]any{})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error":"Project name is required"`)
}

func TestHandler_Update_Validation(t *testing.T) {
	api, svc := setup(t)
	svc.On("Update", mock.Anything, "01J", mock.Anything).Return(nil, timetrack.ErrNegativeDuration)

	resp := api.Patch("/api/timetracker/01J", map[string]any{"duration": -5})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), `"error":"Duration must not be negative"`)
}

func TestHandler_Stats(t *testing.T) {
	api, svc := setup(t)
	svc.On("Stats", mock.Anything, timetrack.RangeWeek).Return(&timetrack.Stats{
		Range:        timetrack.RangeWeek,
		TotalSeconds: 3600,
		Sessions:     2,
		ByProject:    []timetrack.ProjectTotal{{ProjectName: "Writing", Seconds: 3600, Sessions: 2}},
		ByYear:       []timetrack.PeriodTotal{},
		ByMonth:      []timetrack.PeriodTotal{},
	}, nil)
	svc.On("Stats", mock.Anything, timetrack.Range("decade")).Return(nil, timetrack.ErrInvalidRange)

	resp := api.Get("/api/timetracker/stats?range=Week")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"totalSeconds":3600`)

	resp = api.Get("/api/timetracker/stats?range=decade")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandler_Delete(t *testing.T) {
	api, svc := setup(t)
	svc.On("Delete", mock.Anything, "01J").Return(nil)

	resp := api.Delete("/api/timetracker/01J")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
