package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrMenuItemNotOrderable),
		errors.Is(err, commands.ErrCustomerIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPersistenceFailure),
		errors.Is(err, commands.ErrDailyOrderCapacityReached):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		msg = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: msg})
}

func badRequest(ctx echo.Context, msg string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: msg})
}
