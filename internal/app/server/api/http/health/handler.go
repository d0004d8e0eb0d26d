package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"
)

const pingTimeout = 2 * time.Second

var errDatabaseUnavailable = apperr.New(apperr.ErrUpstream, "database_unavailable", "Database is unavailable")

// Pinger проверяет доступность базы.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	dialect    string
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, dialect string, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		dialect:    dialect,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("database ping failed", "error", err)
		return nil, apierr.From(h.log, errDatabaseUnavailable)
	}

	return &Output{
		Body: Response{
			Status:   "OK",
			Database: h.dialect,
		},
	}, nil
}
