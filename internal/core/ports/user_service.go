package ports

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

// UserService defines account and role operations.
type UserService interface {
	Register(ctx context.Context, profile map[string]any) (*domain.InsertResult, error)
	List(ctx context.Context) ([]*domain.User, error)
	// HasRole reports whether the stored user for email holds role. An unknown
	// email yields false without error.
	HasRole(ctx context.Context, email string, role domain.Role) (bool, error)
	GrantRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
