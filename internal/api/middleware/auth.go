package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/infrastructure/metrics"
)

// claimsKey is the echo context key holding the verified *domain.Claims.
const claimsKey = "auth.claims"

// TokenVerifier is the part of the token service the identity gate needs.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// Auth is the identity gate. It requires "Authorization: Bearer <token>",
// verifies the token and stores the decoded claims on the context. Every
// failure ends the request with 401 before the next handler runs.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.GateRejectionsTotal.WithLabelValues("identity", "missing_header").Inc()
				return domain.ErrUnauthorized
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.GateRejectionsTotal.WithLabelValues("identity", "malformed_header").Inc()
				return domain.ErrUnauthorized
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				reason := "invalid_token"
				if errors.Is(err, domain.ErrMissingToken) {
					reason = "missing_token"
				}
				metrics.GateRejectionsTotal.WithLabelValues("identity", reason).Inc()
				return domain.ErrUnauthorized
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims stored by Auth.
func ClaimsFromContext(c echo.Context) (*domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*domain.Claims)
	return claims, ok && claims != nil
}
