package http

import (
	"errors"
	"net/http"

	"deadline-sync/internal/task"
	pkgErrors "deadline-sync/pkg/errors"
)

var errWrongBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Unknown errors are served as 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, task.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrMissingDeadline),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrInvalidDays),
		errors.Is(err, task.ErrEmptyAccessToken):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrGoogleNotLinked):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "google token not found for user")
	case errors.Is(err, task.ErrChannelNotLinked):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "telegram chat not linked for user")
	case errors.Is(err, task.ErrProviderUnavailable):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
