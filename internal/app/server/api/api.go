// GET    /api/v1/health
// GET    /api/events            POST /api/events            GET|PUT|DELETE /api/events/{id}
// GET    /api/todos             POST /api/todos             GET|PATCH|DELETE /api/todos/{id}
// GET    /api/routines          POST /api/routines          GET|PUT|PATCH|DELETE /api/routines/{id}
// GET    /api/bookmarks         POST /api/bookmarks         PATCH|DELETE /api/bookmarks/{id}
// GET    /api/projects          POST /api/projects          GET|PATCH|DELETE /api/projects/{id}
// GET    /api/timetracker       POST /api/timetracker       GET|PATCH|DELETE /api/timetracker/{id}
// GET    /api/timetracker/stats
// GET    /api/documents         POST /api/documents         GET|PATCH|DELETE /api/documents/{id}
// GET    /api/dashboard-images  POST /api/dashboard-images  DELETE /api/dashboard-images/{id}

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/bookmark"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/dashimage"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/document"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/event"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/health"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/middleware"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/middleware/auth"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/middleware/logger"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/project"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/routine"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/timetrack"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/todo"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/config"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/attachment"
	bookmarkDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/bookmark"
	dashimageDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/dashimage"
	documentDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/document"
	eventDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/event"
	projectDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/project"
	routineDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/routine"
	timetrackDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
	todoDomain "github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"
	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/pagemeta"
	"github.com/lakhweratechnologies3/apptodopro/internal/infrastructure/storage/sqlstore"
)

const titleFetchTimeout = 5 * time.Second

type Handlers struct {
	Health    *health.Handler
	Event     *event.Handler
	Todo      *todo.Handler
	Routine   *routine.Handler
	Bookmark  *bookmark.Handler
	Project   *project.Handler
	Timetrack *timetrack.Handler
	Document  *document.Handler
	DashImage *dashimage.Handler
}

// New создает *chi.Mux со всеми операциями API и раздачей локальных загрузок.
func New(storage *sqlstore.Storage, cfg *config.Config, images *attachment.Manager, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("Dashboard API", "1.0.0")
	// без $schema в телах ответов: ошибки остаются вида {"error": "..."}
	humaConfig.CreateHooks = nil
	if cfg.Auth.TokenHash != "" {
		humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
			"bearer": {Type: "http", Scheme: "bearer"},
		}
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, images, log)
	h.Health.SetupRoutes(API)
	h.Event.SetupRoutes(API)
	h.Todo.SetupRoutes(API)
	h.Routine.SetupRoutes(API)
	h.Bookmark.SetupRoutes(API)
	h.Project.SetupRoutes(API)
	h.Timetrack.SetupRoutes(API)
	h.Document.SetupRoutes(API)
	h.DashImage.SetupRoutes(API)

	if cfg.Images.ResolvedBackend() == config.ImageBackendLocal {
		mountUploads(mux, cfg.Images, log)
	}

	return mux
}

func handlers(storage *sqlstore.Storage, cfg *config.Config, images *attachment.Manager, log *slog.Logger) *Handlers {
	authMW := auth.New(cfg.Auth.TokenHash, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()
	maxBody := cfg.Server.MaxUploadBytes

	middlewares.Add(loggerMW.Middleware())
	healthHandler := health.NewHandler(storage, string(storage.Dialect()), log, middlewares.GetAllAndClear())

	eventService := eventDomain.NewService(sqlstore.NewEventRepository(storage, log), log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	eventHandler := event.NewHandler(eventService, log, middlewares.GetAllAndClear())

	todoService := todoDomain.NewService(sqlstore.NewTodoRepository(storage, log), images, log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	todoHandler := todo.NewHandler(todoService, maxBody, log, middlewares.GetAllAndClear())

	routineService := routineDomain.NewService(sqlstore.NewRoutineRepository(storage, log), images, log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	routineHandler := routine.NewHandler(routineService, maxBody, log, middlewares.GetAllAndClear())

	fetcher := pagemeta.NewFetcher(&http.Client{Timeout: titleFetchTimeout}, titleFetchTimeout, log)
	bookmarkService := bookmarkDomain.NewService(sqlstore.NewBookmarkRepository(storage, log), fetcher, log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	bookmarkHandler := bookmark.NewHandler(bookmarkService, log, middlewares.GetAllAndClear())

	projectService := projectDomain.NewService(sqlstore.NewProjectRepository(storage, log), log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	projectHandler := project.NewHandler(projectService, log, middlewares.GetAllAndClear())

	timetrackService := timetrackDomain.NewService(sqlstore.NewSessionRepository(storage, log), log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	timetrackHandler := timetrack.NewHandler(timetrackService, log, middlewares.GetAllAndClear())

	documentService := documentDomain.NewService(sqlstore.NewDocumentRepository(storage, log), log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	documentHandler := document.NewHandler(documentService, maxBody, log, middlewares.GetAllAndClear())

	dashimageService := dashimageDomain.NewService(sqlstore.NewDashboardImageRepository(storage, log), images, log)
	middlewares.Add(authMW.Middleware(), loggerMW.Middleware())
	dashimageHandler := dashimage.NewHandler(dashimageService, maxBody, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:    healthHandler,
		Event:     eventHandler,
		Todo:      todoHandler,
		Routine:   routineHandler,
		Bookmark:  bookmarkHandler,
		Project:   projectHandler,
		Timetrack: timetrackHandler,
		Document:  documentHandler,
		DashImage: dashimageHandler,
	}
}

// mountUploads раздает файлы локального хранилища, если публичный URL относительный.
func mountUploads(mux *chi.Mux, cfg config.Images, log *slog.Logger) {
	prefix := strings.TrimRight(cfg.PublicURL, "/")
	if !strings.HasPrefix(prefix, "/") || prefix == "" {
		return
	}
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.LocalDir)))
	mux.Handle(prefix+"/*", fs)
	log.Debug("serving uploads", "prefix", prefix, "dir", cfg.LocalDir)
}
