package timetrack

import "time"

type StartInput struct {
	ProjectName string
	Notes       string
}

// UpdateInput для запущенной сессии означает остановку.
type UpdateInput struct {
	EndTime  *time.Time
	Duration *int64
	Notes    *string
}
