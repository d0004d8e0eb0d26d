package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/client/config"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/bookmark"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/event"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"
)

// APIError ответ сервера со статусом >= 400.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("ошибка сервера: статус %d", e.Status)
	}
	return fmt.Sprintf("ошибка сервера: %s", e.Message)
}

// IsNotFound сообщает, что сервер ответил 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   cfg.BaseURL(),
		token:     cfg.APIToken,
		userAgent: "dashctl/1.0",
	}
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/api/v1/health", nil, nil)
}

func (h *httpClient) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var todos []todo.Todo
	err := h.call(ctx, http.MethodGet, "/api/todos", nil, &todos)
	return todos, err
}

func (h *httpClient) CreateTodo(ctx context.Context, req TodoRequest) (*todo.Todo, error) {
	var t todo.Todo
	if err := h.call(ctx, http.MethodPost, "/api/todos", req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *httpClient) UpdateTodo(ctx context.Context, id string, req TodoRequest) (*todo.Todo, error) {
	var t todo.Todo
	if err := h.call(ctx, http.MethodPatch, "/api/todos/"+url.PathEscape(id), req, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *httpClient) DeleteTodo(ctx context.Context, id string) error {
	return h.call(ctx, http.MethodDelete, "/api/todos/"+url.PathEscape(id), nil, nil)
}

func (h *httpClient) ListSessions(ctx context.Context) ([]timetrack.Session, error) {
	var sessions []timetrack.Session
	err := h.call(ctx, http.MethodGet, "/api/timetracker", nil, &sessions)
	return sessions, err
}

func (h *httpClient) StartSession(ctx context.Context, req StartRequest) (*timetrack.Session, error) {
	var s timetrack.Session
	if err := h.call(ctx, http.MethodPost, "/api/timetracker", req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *httpClient) StopSession(ctx context.Context, id string, req StopRequest) (*timetrack.Session, error) {
	var s timetrack.Session
	if err := h.call(ctx, http.MethodPatch, "/api/timetracker/"+url.PathEscape(id), req, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (h *httpClient) Stats(ctx context.Context, rng string) (*timetrack.Stats, error) {
	path := "/api/timetracker/stats"
	if rng != "" {
		path += "?" + url.Values{"range": {rng}}.Encode()
	}
	var stats timetrack.Stats
	if err := h.call(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (h *httpClient) ListBookmarks(ctx context.Context, query string) ([]bookmark.Bookmark, error) {
	path := "/api/bookmarks"
	if query != "" {
		path += "?" + url.Values{"q": {query}}.Encode()
	}
	var bookmarks []bookmark.Bookmark
	err := h.call(ctx, http.MethodGet, path, nil, &bookmarks)
	return bookmarks, err
}

func (h *httpClient) CreateBookmark(ctx context.Context, req BookmarkRequest) (*bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	if err := h.call(ctx, http.MethodPost, "/api/bookmarks", req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (h *httpClient) UpdateBookmark(ctx context.Context, id string, req BookmarkRequest) (*bookmark.Bookmark, error) {
	var b bookmark.Bookmark
	if err := h.call(ctx, http.MethodPatch, "/api/bookmarks/"+url.PathEscape(id), req, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (h *httpClient) ListEvents(ctx context.Context, month string) ([]event.Event, error) {
	path := "/api/events"
	if month != "" {
		path += "?" + url.Values{"month": {month}}.Encode()
	}
	var events []event.Event
	err := h.call(ctx, http.MethodGet, path, nil, &events)
	return events, err
}

func (h *httpClient) CreateEvent(ctx context.Context, req EventRequest) (*event.Event, error) {
	var e event.Event
	if err := h.call(ctx, http.MethodPost, "/api/events", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (h *httpClient) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("Отправка запроса", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ", "status", resp.StatusCode, "body", string(body))

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &errResp)
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}
	return nil
}
