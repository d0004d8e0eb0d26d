package todo

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/form"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/todo"
)

type Handler struct {
	service    todo.Servicer
	maxBody    int64
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service todo.Servicer, maxBody int64, log *slog.Logger, mws huma.Middlewares) *Handler {
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
	todos, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: todos}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	t, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: t}, nil
}

func (h *Handler) create(ctx context.Context, input *form.Input) (*output, error) {
	p, err := form.Parse(h.log, input.ContentType, input.RawBody)
	if err != nil {
		return nil, err
	}

	t, err := h.service.Create(ctx, todo.NewCreateInput(p))
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: t}, nil
}

func (h *Handler) update(ctx context.Context, input *form.IDInput) (*output, error) {
	p, err := form.Parse(h.log, input.ContentType, input.RawBody)
	if err != nil {
		return nil, err
	}

	t, err := h.service.Update(ctx, input.ID, todo.NewUpdateInput(p))
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: t}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
