// Package pagemeta достает заголовок веб-страницы для закладок.
package pagemeta

import (
	"context"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const (
	defaultTimeout = 5 * time.Second
	// заголовок почти всегда в начале документа
	maxBodyBytes = 512 << 10
	userAgent    = "Mozilla/5.0 (compatible; DashboardBot/1.0)"
)

var titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	log     *slog.Logger
}

func NewFetcher(client *http.Client, timeout time.Duration, log *slog.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client:  client,
		timeout: timeout,
		log:     log.With("component", "pagemeta"),
	}
}

// FetchTitle возвращает пустую строку при любой ошибке.
func (f *Fetcher) FetchTitle(ctx context.Context, url string) string {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Debug("invalid bookmark url", "url", url, "error", err)
		return ""
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Debug("failed to fetch page", "url", url, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		f.log.Debug("unexpected page status", "url", url, "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		f.log.Debug("failed to read page", "url", url, "error", err)
		return ""
	}
	return ExtractTitle(body)
}

// ExtractTitle достает текст первого тега <title>, схлопывая пробелы.
func ExtractTitle(page []byte) string {
	m := titleRe.FindSubmatch(page)
	if m == nil {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(string(m[1]))), " ")
}
