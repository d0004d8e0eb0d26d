package routine

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/form"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/routine"
)

type Handler struct {
	service    routine.Servicer
	maxBody    int64
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service routine.Servicer, maxBody int64, log *slog.Logger, mws huma.Middlewares) *Handler {
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
	huma.Register(api, h.replaceOp(), h.replace)
	huma.Register(api, h.patchOp(), h.patch)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	routines, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: routines}, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*output, error) {
	r, err := h.service.Find(ctx, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: r}, nil
}

func (h *Handler) create(ctx context.Context, input *form.Input) (*output, error) {
	p, err := form.Parse(h.log, input.ContentType, input.RawBody)
	if err != nil {
		return nil, err
	}

	r, err := h.service.Create(ctx, routine.NewFields(p))
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: r}, nil
}

func (h *Handler) replace(ctx context.Context, input *form.IDInput) (*output, error) {
	p, err := form.Parse(h.log, input.ContentType, input.RawBody)
	if err != nil {
		return nil, err
	}

	r, err := h.service.Replace(ctx, input.ID, routine.NewFields(p))
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: r}, nil
}

func (h *Handler) patch(ctx context.Context, input *form.IDInput) (*output, error) {
	p, err := form.Parse(h.log, input.ContentType, input.RawBody)
	if err != nil {
		return nil, err
	}

	patch, err := routine.NewPatch(p)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	r, err := h.service.Patch(ctx, input.ID, patch)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: r}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
