package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/domain"
)

// HTTPError error con status y mensaje listos para el sobre. Lo escribe ErrorHandler.
type HTTPError struct {
	Status  int
	Message string
	Data    interface{}
}

func (e *HTTPError) Error() string { return e.Message }

// NewError construye un HTTPError sin data.
func NewError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

// classify traduce errores de dominio conocidos; el resto se devuelve tal cual y termina en 500.
// notFound es el mensaje para domain.ErrNotFound (vacío = genérico).
func classify(err error, notFound string) error {
	if notFound == "" {
		notFound = msgNotFound
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return NewError(fiber.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return NewError(fiber.StatusBadRequest, msgEmailInUse)
	case errors.Is(err, domain.ErrInvalidInput):
		return NewError(fiber.StatusBadRequest, msgInvalidInput)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return NewError(fiber.StatusUnauthorized, msgWrongCredentials)
	case errors.Is(err, domain.ErrUnauthorized):
		return NewError(fiber.StatusUnauthorized, msgUnauthenticated)
	case errors.Is(err, domain.ErrForbidden):
		return NewError(fiber.StatusForbidden, msgUnauthorized)
	case errors.Is(err, domain.ErrAccountBlocked):
		return NewError(fiber.StatusForbidden, msgAccountLocked)
	case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenConsumed):
		return NewError(fiber.StatusBadRequest, msgInvalidToken)
	case errors.Is(err, domain.ErrEmployeeLimit):
		return NewError(fiber.StatusConflict, msgEmployeeLimit)
	case errors.Is(err, domain.ErrConflict):
		return NewError(fiber.StatusConflict, msgConflict)
	}
	return err
}
