package ports

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

// ProductService defines catalog use cases.
type ProductService interface {
	Menu(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Upvote(ctx context.Context, id string) (*domain.Product, error)
	Report(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query domain.ProductSearch) ([]*domain.Product, error)
}
