package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techhunt/api/internal/core/domain"
)

// errorResponse is the body of every 4xx and 5xx response.
type errorResponse struct {
	Error string `json:"error"`
}

type errorMapping struct {
	target error
	status int
	// message replaces the sentinel text when set.
	message string
}

// errorMappings is checked in order with errors.Is. Gate failures use fixed
// messages so clients cannot tell a bad signature from an expired token.
var errorMappings = []errorMapping{
	{domain.ErrMissingToken, http.StatusUnauthorized, "unauthorized access"},
	{domain.ErrInvalidToken, http.StatusUnauthorized, "unauthorized access"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized access"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden access"},
	{domain.ErrProductNotFound, http.StatusNotFound, ""},
	{domain.ErrUserNotFound, http.StatusNotFound, ""},
	{domain.ErrUserExists, http.StatusConflict, ""},
	{domain.ErrInvalidID, http.StatusBadRequest, ""},
	{domain.ErrMissingEmail, http.StatusBadRequest, ""},
	{domain.ErrInvalidRole, http.StatusBadRequest, ""},
}

// NewHTTPErrorHandler renders handler and middleware errors as
// {"error": "<message>"}. Errors without a mapping are logged and reported
// as a bare 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, errorResponse{Error: msg})
	}
}

func statusFor(err error) (int, string) {
	// Bind failures, validation messages and router 404/405.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.message != "" {
			return m.status, m.message
		}
		return m.status, m.target.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}
