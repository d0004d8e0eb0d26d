package project

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/project"
)

type Handler struct {
	service    project.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service project.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
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
	projects, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: projects}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	p, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: p}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	p, err := h.service.Create(ctx, input.Body.createInput())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: p}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	p, err := h.service.Update(ctx, input.ID, input.Body.updateInput())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: p}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
