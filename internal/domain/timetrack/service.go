package timetrack

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context) ([]Session, error)
	Find(ctx context.Context, id string) (*Session, error)
	Start(ctx context.Context, in StartInput) (*Session, error)
	Update(ctx context.Context, id string, in UpdateInput) (*Session, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, r Range) (*Stats, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return newService(repo, time.Now, log)
}

func newService(repo Repository, now func() time.Time, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		now:  now,
		log:  log.With("component", "timetrack_service"),
	}
}

func (s *Service) List(ctx context.Context) ([]Session, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list sessions", "error", err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (s *Service) Find(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find session", "id", id, "error", err)
		return nil, fmt.Errorf("find session: %w", err)
	}
	return sess, nil
}

// Start создает запущенную сессию с текущим временем начала.
func (s *Service) Start(ctx context.Context, in StartInput) (*Session, error) {
	sess := &Session{
		ProjectName: strings.TrimSpace(in.ProjectName),
		Notes:       strings.TrimSpace(in.Notes),
		StartTime:   s.now().UTC(),
		IsRunning:   true,
	}
	if sess.ProjectName == "" {
		return nil, ErrProjectNameRequired
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		s.log.Error("failed to start session", "project", sess.ProjectName, "error", err)
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.log.Info("session started", "id", sess.ID, "project", sess.ProjectName)
	return sess, nil
}

// Update останавливает запущенную сессию или правит остановленную.
// Остановленная сессия повторно не запускается.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Session, error) {
	if in.Duration != nil && *in.Duration < 0 {
		return nil, ErrNegativeDuration
	}

	sess, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Notes != nil {
		sess.Notes = strings.TrimSpace(*in.Notes)
	}

	if sess.IsRunning {
		end := s.now().UTC()
		if in.EndTime != nil {
			end = in.EndTime.UTC()
		}
		if err := s.finish(sess, end, in.Duration); err != nil {
			return nil, err
		}
		sess.IsRunning = false
	} else if in.EndTime != nil || in.Duration != nil {
		end := sess.StartTime
		if sess.EndTime != nil {
			end = *sess.EndTime
		}
		if in.EndTime != nil {
			end = in.EndTime.UTC()
		}
		if err := s.finish(sess, end, in.Duration); err != nil {
			return nil, err
		}
	} else if in.Notes == nil {
		return sess, nil
	}

	if err := s.repo.Update(ctx, sess); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update session", "id", id, "error", err)
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.log.Info("session updated", "id", id, "duration", sess.Duration)
	return sess, nil
}

func (s *Service) finish(sess *Session, end time.Time, duration *int64) error {
	if end.Before(sess.StartTime) {
		return ErrEndBeforeStart
	}
	sess.EndTime = &end
	if duration != nil {
		sess.Duration = *duration
	} else {
		sess.Duration = int64(end.Sub(sess.StartTime).Seconds())
	}
	return nil
}

// Delete не считает отсутствие сессии ошибкой.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete session", "id", id, "error", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Stats агрегирует сессии периода по проектам, годам и месяцам текущего года.
func (s *Service) Stats(ctx context.Context, r Range) (*Stats, error) {
	if r == "" {
		r = RangeAll
	}
	if !r.Valid() {
		return nil, ErrInvalidRange
	}

	now := s.now().UTC()
	sessions, err := s.repo.ListSince(ctx, r.Since(now))
	if err != nil {
		s.log.Error("failed to load sessions for stats", "range", r, "error", err)
		return nil, fmt.Errorf("session stats: %w", err)
	}

	return aggregate(r, sessions, now), nil
}

func aggregate(r Range, sessions []Session, now time.Time) *Stats {
	stats := &Stats{
		Range:     r,
		ByProject: []ProjectTotal{},
		ByYear:    []PeriodTotal{},
		ByMonth:   []PeriodTotal{},
	}

	projects := map[string]*ProjectTotal{}
	years := map[int]int64{}
	months := map[time.Month]int64{}

	for i := range sessions {
		sess := &sessions[i]
		seconds := sess.Seconds(now)

		stats.TotalSeconds += seconds
		stats.Sessions++

		pt, ok := projects[sess.ProjectName]
		if !ok {
			pt = &ProjectTotal{ProjectName: sess.ProjectName}
			projects[sess.ProjectName] = pt
		}
		pt.Seconds += seconds
		pt.Sessions++

		start := sess.StartTime.UTC()
		years[start.Year()] += seconds
		if start.Year() == now.Year() {
			months[start.Month()] += seconds
		}
	}

	for _, pt := range projects {
		stats.ByProject = append(stats.ByProject, *pt)
	}
	sort.Slice(stats.ByProject, func(i, j int) bool {
		if stats.ByProject[i].Seconds != stats.ByProject[j].Seconds {
			return stats.ByProject[i].Seconds > stats.ByProject[j].Seconds
		}
		return stats.ByProject[i].ProjectName < stats.ByProject[j].ProjectName
	})

	yearKeys := make([]int, 0, len(years))
	for y := range years {
		yearKeys = append(yearKeys, y)
	}
	sort.Ints(yearKeys)
	for _, y := range yearKeys {
		stats.ByYear = append(stats.ByYear, PeriodTotal{Period: strconv.Itoa(y), Seconds: years[y]})
	}

	for m := time.January; m <= time.December; m++ {
		if sec, ok := months[m]; ok {
			stats.ByMonth = append(stats.ByMonth, PeriodTotal{
				Period:  fmt.Sprintf("%d-%02d", now.Year(), int(m)),
				Seconds: sec,
			})
		}
	}

	return stats
}
