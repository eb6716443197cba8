package http

import (
	"errors"
	"fmt"
	"net/http"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var (
	errMalformedRequest = errors.New("malformed request")
	errMissingPositions = fmt.Errorf("%w: from and to are required", errMalformedRequest)
)

func malformedBody(err error) error {
	return fmt.Errorf("%w: body: %w", errMalformedRequest, err)
}

func malformedParam(name string, err error) error {
	return fmt.Errorf("%w: %s: %w", errMalformedRequest, name, err)
}

// statusOf maps domain and application errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPreconditionIsNotMet),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errMalformedRequest),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
