package ports

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
// IncrementUpvotes and MarkReported are single atomic store operations and
// return the document as it is after the update.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	IncrementUpvotes(ctx context.Context, id string) (*domain.Product, error)
	MarkReported(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, term string, skip, limit int64) ([]*domain.Product, error)
}

// ProductCache is an optional read-through cache for single products.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, bool, error)
	Set(ctx context.Context, p *domain.Product) error
}
