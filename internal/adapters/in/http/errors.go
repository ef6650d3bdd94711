package http

import (
	"errors"
	"log/slog"
	"net/http"

	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error onto an HTTP status.
func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, errs.ErrCapacityExceeded),
		errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrStockInconsistency):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrOrderHasNoLines):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageOf hides internal failures behind a generic message.
func messageOf(err error, status int) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(status)
	}
	if status == http.StatusInternalServerError {
		return "internal error"
	}
	return err.Error()
}

// NewErrorHandler renders every error as an Error body. Server-side failures are logged.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := statusOf(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
		}

		body := Error{Code: status, Message: messageOf(err, status)}
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "write error response", "error", err)
		}
	}
}
