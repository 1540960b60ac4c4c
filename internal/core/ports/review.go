package ports

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

type ReviewRepository interface {
	Insert(ctx context.Context, r *domain.Review) (*domain.InsertResult, error)
	FindByRoom(ctx context.Context, roomID string) ([]*domain.Review, error)
}

type ReviewService interface {
	Create(ctx context.Context, r *domain.Review) (*domain.InsertResult, error)
	ListByRoom(ctx context.Context, roomID string) ([]*domain.Review, error)
}
