// Package apierr переводит доменные ошибки в HTTP ответы вида {"error": "..."}.
package apierr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"github.com/lakhweratechnologies3/apptodopro/internal/domain/apperr"
)

const (
	msgInternal = "Internal server error"
	msgTimeout  = "Upstream timeout"
)

// Error тело ошибки API.
type Error struct {
	Status  int      `json:"-"`
	Message string   `json:"error" doc:"Описание ошибки" example:"Todo not found"`
	Details []string `json:"details,omitempty" doc:"Подробности валидации"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.Status
}

// NewError заменяет huma.NewError. Ошибки валидации huma (422) отдаются как 400.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	var details []string
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}

	return &Error{
		Status:  status,
		Message: msg,
		Details: details,
	}
}

func init() {
	huma.NewError = NewError
}

// From выбирает статус по виду доменной ошибки. Неизвестные ошибки логируются
// и скрываются за общим сообщением.
func From(log *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	var se huma.StatusError
	if errors.As(err, &se) {
		return se
	}

	switch {
	case errors.Is(err, apperr.ErrValidation):
		return NewError(http.StatusBadRequest, apperr.Message(err, "Invalid request"))
	case errors.Is(err, apperr.ErrNotFound):
		return NewError(http.StatusNotFound, apperr.Message(err, "Not found"))
	case errors.Is(err, apperr.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		log.Error("upstream timeout", "error", err)
		return NewError(http.StatusGatewayTimeout, apperr.Message(err, msgTimeout))
	case errors.Is(err, apperr.ErrUpstream):
		log.Error("upstream error", "error", err)
		return NewError(http.StatusInternalServerError, apperr.Message(err, msgInternal))
	}

	log.Error("request failed", "error", err)
	return NewError(http.StatusInternalServerError, msgInternal)
}
