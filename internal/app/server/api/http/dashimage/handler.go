package dashimage

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/form"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/dashimage"
)

type Handler struct {
	service    dashimage.Servicer
	maxBody    int64
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service dashimage.Servicer, maxBody int64, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		maxBody:    maxBody,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.uploadOp(), h.upload)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	images, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: images}, nil
}

func (h *Handler) upload(ctx context.Context, input *form.Input) (*output, error) {
	p, err := form.Parse(h.log, input.ContentType, input.RawBody)
	if err != nil {
		return nil, err
	}

	var data []byte
	if p.File != nil {
		data = p.File.Data
	}

	img, err := h.service.Upload(ctx, data)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: img}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
