package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/client/config"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/bookmark"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/event"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"
)

var (
	ErrNoRunningSession = errors.New("нет запущенной сессии")
	ErrAmbiguousID      = errors.New("префикс id подходит к нескольким записям")
	ErrNoMatch          = errors.New("запись с таким id не найдена")
)

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		config:     cfg,
		log:        log,
		httpClient: NewHTTPClient(cfg, log),
	}
}

// CheckConnection проверяет доступность сервера.
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Todos(ctx context.Context) ([]todo.Todo, error) {
	return a.httpClient.ListTodos(ctx)
}

func (a *App) AddTodo(ctx context.Context, text string) (*todo.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("текст задачи не может быть пустым")
	}
	return a.httpClient.CreateTodo(ctx, TodoRequest{Text: &text})
}

// SetTodoDone отмечает задачу. id может быть уникальным префиксом.
func (a *App) SetTodoDone(ctx context.Context, id string, done bool) (*todo.Todo, error) {
	todos, err := a.Todos(ctx)
	if err != nil {
		return nil, err
	}
	full, err := resolveID(id, todos, func(t todo.Todo) string { return t.ID })
	if err != nil {
		return nil, err
	}
	return a.httpClient.UpdateTodo(ctx, full, TodoRequest{Completed: &done})
}

func (a *App) RemoveTodo(ctx context.Context, id string) error {
	todos, err := a.Todos(ctx)
	if err != nil {
		return err
	}
	full, err := resolveID(id, todos, func(t todo.Todo) string { return t.ID })
	if err != nil {
		return err
	}
	return a.httpClient.DeleteTodo(ctx, full)
}

func (a *App) StartTimer(ctx context.Context, project, notes string) (*timetrack.Session, error) {
	return a.httpClient.StartSession(ctx, StartRequest{ProjectName: project, Notes: notes})
}

// StopTimer останавливает сессию. Без id останавливается последняя запущенная.
func (a *App) StopTimer(ctx context.Context, id string, duration *int64) (*timetrack.Session, error) {
	sessions, err := a.httpClient.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	if id == "" {
		for _, s := range sessions {
			if s.IsRunning {
				id = s.ID
				break
			}
		}
		if id == "" {
			return nil, ErrNoRunningSession
		}
	} else {
		id, err = resolveID(id, sessions, func(s timetrack.Session) string { return s.ID })
		if err != nil {
			return nil, err
		}
	}

	return a.httpClient.StopSession(ctx, id, StopRequest{Duration: duration})
}

func (a *App) Sessions(ctx context.Context) ([]timetrack.Session, error) {
	return a.httpClient.ListSessions(ctx)
}

func (a *App) Stats(ctx context.Context, rng string) (*timetrack.Stats, error) {
	return a.httpClient.Stats(ctx, strings.ToLower(strings.TrimSpace(rng)))
}

func (a *App) Bookmarks(ctx context.Context, query string) ([]bookmark.Bookmark, error) {
	return a.httpClient.ListBookmarks(ctx, strings.TrimSpace(query))
}

func (a *App) AddBookmark(ctx context.Context, rawURL, title string) (*bookmark.Bookmark, error) {
	req := BookmarkRequest{URL: strings.TrimSpace(rawURL)}
	if title = strings.TrimSpace(title); title != "" {
		req.Title = &title
	}
	return a.httpClient.CreateBookmark(ctx, req)
}

func (a *App) PinBookmark(ctx context.Context, id string, pinned bool) (*bookmark.Bookmark, error) {
	bookmarks, err := a.Bookmarks(ctx, "")
	if err != nil {
		return nil, err
	}
	full, err := resolveID(id, bookmarks, func(b bookmark.Bookmark) string { return b.ID })
	if err != nil {
		return nil, err
	}
	return a.httpClient.UpdateBookmark(ctx, full, BookmarkRequest{Pinned: &pinned})
}

func (a *App) Events(ctx context.Context, month string) ([]event.Event, error) {
	return a.httpClient.ListEvents(ctx, month)
}

func (a *App) AddEvent(ctx context.Context, req EventRequest) (*event.Event, error) {
	return a.httpClient.CreateEvent(ctx, req)
}

// resolveID находит полный id по точному совпадению или уникальному префиксу.
func resolveID[T any](prefix string, items []T, id func(T) string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ErrNoMatch
	}

	var found []string
	for _, it := range items {
		full := id(it)
		if strings.EqualFold(full, prefix) {
			return full, nil
		}
		if strings.HasPrefix(strings.ToUpper(full), strings.ToUpper(prefix)) {
			found = append(found, full)
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNoMatch, prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}
