package event

import "time"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Event событие календаря. Date хранится строкой YYYY-MM-DD.
type Event struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        string    `json:"date" db:"date"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Filter ограничивает список одним днем или месяцем.
type Filter struct {
	Date  string
	Month string
}
