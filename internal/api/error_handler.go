package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clinivet/gateway/internal/backend"
	"github.com/clinivet/gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all gateway errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain and backend errors to their appropriate HTTP status codes.
//   - Renders backend rejections with their message verbatim.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A backend rejection carries the message the clinic wants shown.
	// It goes through untouched.
	var rf *backend.RequestFailedError
	if errors.As(err, &rf) {
		return http.StatusBadRequest, rf.Message
	}

	// The backend was unreachable or answered outside the envelope.
	var te *backend.TransportError
	if errors.As(err, &te) {
		log.Error().
			Err(te).
			Str("op", te.Op).
			Int("upstream_status", te.Status).
			Str("path", c.Path()).
			Msg("backend transport failure")
		return http.StatusBadGateway, "el servicio no está disponible"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "sesión no encontrada"
	case errors.Is(err, domain.ErrIncompleteSession):
		return http.StatusBadGateway, "respuesta de autenticación incompleta"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
