package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/medroster/roster-system/internal/api/handler"
	"github.com/medroster/roster-system/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps each variant of the closed error taxonomy to its HTTP status code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every error in the uniform envelope {statusCode, message, data}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, data := resolveError(err, log, c)
		_ = c.JSON(code, handler.Envelope{StatusCode: code, Message: msg, Data: data})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, any) {
	// Echo's own errors (404 from the router, method not allowed, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Malformed input carries field detail and is rejected before any
	// domain logic runs.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusNotAcceptable, "Input Validation Error", ve.Fields
	}

	switch {
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, "Email exists", nil
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", nil
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, "Unauthenticated", nil
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Unauthorized", nil
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Not found", nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error", nil
}
