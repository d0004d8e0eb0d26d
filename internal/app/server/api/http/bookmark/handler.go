package bookmark

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/app/server/api/http/apierr"
	"github.com/lakhweratechnologies3/apptodopro/internal/domain/bookmark"
)

type Handler struct {
	service    bookmark.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service bookmark.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	bookmarks, err := h.service.List(ctx, input.Query)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: bookmarks}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	b, err := h.service.Create(ctx, bookmark.CreateInput{
		URL:   input.Body.URL,
		Title: input.Body.Title,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: b}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	b, err := h.service.Update(ctx, input.ID, bookmark.UpdateInput{
		Pinned: input.Body.Pinned,
		Title:  input.Body.Title,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &output{Body: b}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*struct{}, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return nil, nil
}
