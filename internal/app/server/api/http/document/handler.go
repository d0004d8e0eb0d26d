package document

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/document"
)

type Handler struct {
	service    document.Servicer
	maxBody    int64
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler maxBody ограничивает тело: content может содержать data-URL картинки.
func NewHandler(service document.Servicer, maxBody int64, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		maxBody:    maxBody,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	docs, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: docs}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	d, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: d}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	in, err := input.Body.createInput()
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	d, err := h.service.Create(ctx, in)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: d}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	in, err := input.Body.updateInput()
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	d, err := h.service.Update(ctx, input.ID, in)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: d}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
