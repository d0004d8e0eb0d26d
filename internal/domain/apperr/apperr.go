// Package apperr описывает общую таксономию ошибок доменного слоя.
package apperr

import "errors"

// Виды ошибок, по которым транспортный слой выбирает статус ответа.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrUpstream   = errors.New("upstream dependency error")
	ErrTimeout    = errors.New("upstream timeout")
)

// DomainError несет сообщение для клиента и вид ошибки в Err.
type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(kind error, code, message string) *DomainError {
	return &DomainError{
		Err:     kind,
		Message: message,
		Code:    code,
	}
}

func Validation(code, message string) *DomainError {
	return New(ErrValidation, code, message)
}

func NotFound(code, message string) *DomainError {
	return New(ErrNotFound, code, message)
}

// Message возвращает сообщение DomainError из цепочки или fallback.
func Message(err error, fallback string) string {
	var de *DomainError
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return fallback
}
