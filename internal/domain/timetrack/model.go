package timetrack

import "time"

// Session интервал учета времени. Запущенная сессия не имеет EndTime.
type Session struct {
	ID          string     `json:"id" db:"id"`
	ProjectName string     `json:"projectName" db:"project_name"`
	StartTime   time.Time  `json:"startTime" db:"start_time"`
	EndTime     *time.Time `json:"endTime,omitempty" db:"end_time"`
	Duration    int64      `json:"duration" db:"duration"`
	Notes       string     `json:"notes" db:"notes"`
	IsRunning   bool       `json:"isRunning" db:"is_running"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// Seconds учитывает время запущенной сессии до now.
func (s *Session) Seconds(now time.Time) int64 {
	if s.IsRunning {
		if d := int64(now.Sub(s.StartTime).Seconds()); d > 0 {
			return d
		}
		return 0
	}
	return s.Duration
}

type Range string

const (
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeAll   Range = "all"
)

func (r Range) Valid() bool {
	switch r {
	case RangeToday, RangeWeek, RangeMonth, RangeAll:
		return true
	}
	return false
}

// Since возвращает начало периода: день, неделя с понедельника, календарный месяц.
// Для RangeAll нулевое время.
func (r Range) Since(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeToday:
		return day
	case RangeWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

type ProjectTotal struct {
	ProjectName string `json:"projectName"`
	Seconds     int64  `json:"seconds"`
	Sessions    int    `json:"sessions"`
}

type PeriodTotal struct {
	Period  string `json:"period"`
	Seconds int64  `json:"seconds"`
}

type Stats struct {
	Range        Range          `json:"range"`
	TotalSeconds int64          `json:"totalSeconds"`
	Sessions     int            `json:"sessions"`
	ByProject    []ProjectTotal `json:"byProject"`
	ByYear       []PeriodTotal  `json:"byYear"`
	ByMonth      []PeriodTotal  `json:"byMonth"`
}
