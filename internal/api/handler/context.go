package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/api/middleware"
	"github.com/techhunt/api/internal/core/domain"
)

// authenticatedEmail returns the email of the verified token. A missing value
// means the identity gate did not run for this route, which is treated as an
// unauthenticated request.
func authenticatedEmail(c echo.Context) (string, error) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok || claims.Email == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Email, nil
}

// bindObject decodes the request body as a JSON object. Query and path
// parameters are not merged into the result.
func bindObject(c echo.Context) (map[string]any, error) {
	var payload map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// stringField returns payload[key] when it holds a string.
func stringField(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
