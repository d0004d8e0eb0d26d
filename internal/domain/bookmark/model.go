package bookmark

import (
	"net/url"
	"time"
)

const faviconService = "https://www.google.com/s2/favicons?sz=64&domain_url="

type Bookmark struct {
	ID         string    `json:"id" db:"id"`
	URL        string    `json:"url" db:"url"`
	Title      string    `json:"title" db:"title"`
	FaviconURL string    `json:"faviconUrl" db:"favicon_url"`
	Pinned     bool      `json:"pinned" db:"pinned"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// FaviconFor строит ссылку на иконку сайта через сервис Google s2.
func FaviconFor(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	return faviconService + url.QueryEscape(rawURL)
}
