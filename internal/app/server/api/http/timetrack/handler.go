package timetrack

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/timetrack"
)

type Handler struct {
	service    timetrack.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service timetrack.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.startOp(), h.start)
	huma.Register(api, h.statsOp(), h.stats)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	sessions, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: sessions}, nil
}

func (h *Handler) start(ctx context.Context, input *startInput) (*output, error) {
	sess, err := h.service.Start(ctx, timetrack.StartInput{
		ProjectName: input.Body.ProjectName,
		Notes:       input.Body.Notes,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: sess}, nil
}

func (h *Handler) stats(ctx context.Context, input *statsInput) (*statsOutput, error) {
	r := timetrack.Range(strings.ToLower(strings.TrimSpace(input.Range)))
	stats, err := h.service.Stats(ctx, r)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &statsOutput{Body: stats}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	sess, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: sess}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	sess, err := h.service.Update(ctx, input.ID, timetrack.UpdateInput{
		EndTime:  input.Body.EndTime,
		Duration: input.Body.Duration,
		Notes:    input.Body.Notes,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: sess}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
