package client

import "time"

// Тела запросов к API. Поля с nil не отправляются и не меняются на сервере.

type TodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

type StartRequest struct {
	ProjectName string `json:"projectName,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type StopRequest struct {
	EndTime  *time.Time `json:"endTime,omitempty"`
	Duration *int64     `json:"duration,omitempty"`
	Notes    *string    `json:"notes,omitempty"`
}

type BookmarkRequest struct {
	URL    string  `json:"url,omitempty"`
	Title  *string `json:"title,omitempty"`
	Pinned *bool   `json:"pinned,omitempty"`
}

type EventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}
