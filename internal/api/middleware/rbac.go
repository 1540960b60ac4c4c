package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/infrastructure/metrics"
)

// CredentialStore resolves the stored user behind an authenticated email.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireRole is the role gate. It must be chained after Auth: the stored
// user is looked up by the authenticated email only, and the request is
// forbidden unless that user holds role.
func RequireRole(store CredentialStore, role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok || claims.Email == "" {
				metrics.GateRejectionsTotal.WithLabelValues("role", "missing_claims").Inc()
				return domain.ErrUnauthorized
			}

			user, err := store.FindByEmail(c.Request().Context(), claims.Email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.GateRejectionsTotal.WithLabelValues("role", "unknown_user").Inc()
					return domain.ErrForbidden
				}
				return fmt.Errorf("role gate: %w", err)
			}

			if !user.HasRole(role) {
				metrics.GateRejectionsTotal.WithLabelValues("role", "forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
