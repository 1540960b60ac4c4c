package ports

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

type CartRepository interface {
	Insert(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error)
	FindAll(ctx context.Context) ([]*domain.CartItem, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}

// CartService manages userProduct entries. No ownership checks are applied.
type CartService interface {
	Add(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error)
	List(ctx context.Context) ([]*domain.CartItem, error)
	Remove(ctx context.Context, id string) (*domain.DeleteResult, error)
}
