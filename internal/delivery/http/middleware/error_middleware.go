package middleware

import (
	"log/slog"
	"net/http"

	"quill/internal/delivery/http/response"
	domainerrors "quill/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors returned by handlers into the API's
// error payloads.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Application
// errors carry their own status code and client message; everything
// else is logged and reported as an internal error.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("request failed",
				slog.String("path", c.Request().URL.Path),
				slog.String("error", err.Error()),
			)
		}
		if writeErr := response.Message(c, appErr.HTTPCode(), appErr.Message()); writeErr != nil {
			m.logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			notFound := domainerrors.ErrRouteNotFound
			if writeErr := response.Message(c, notFound.HTTPCode(), notFound.Message()); writeErr != nil {
				m.logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
			}

			return
		default:
			msg, ok := httpErr.Message.(string)
			if !ok {
				msg = http.StatusText(httpErr.Code)
			}
			if writeErr := response.Message(c, httpErr.Code, msg); writeErr != nil {
				m.logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
			}

			return
		}
	}

	m.logger.Error("unhandled error",
		slog.String("path", c.Request().URL.Path),
		slog.String("error", err.Error()),
	)
	if writeErr := response.Message(c, http.StatusInternalServerError, err.Error()); writeErr != nil {
		m.logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
	}
}
