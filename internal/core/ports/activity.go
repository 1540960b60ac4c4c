package ports

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

// ActivityRepository persists product activity to the audit collection.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.ProductActivity) error
}

// ActivityService records a single product activity entry.
type ActivityService interface {
	Record(ctx context.Context, a domain.ProductActivity) error
}

// ActivityPublisher hands activity off for asynchronous recording.
// Publish must not block the caller.
type ActivityPublisher interface {
	Publish(a domain.ProductActivity)
}
