package memory

import (
	"context"
	"sync"

	"github.com/techhunt/api/internal/core/domain"
)

type ActivityRepository struct {
	mu      sync.Mutex
	entries []domain.ProductActivity
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Insert(_ context.Context, a *domain.ProductActivity) error {
	r.mu.Lock()
	r.entries = append(r.entries, *a)
	r.mu.Unlock()
	return nil
}

// Entries returns a copy of everything recorded so far.
func (r *ActivityRepository) Entries() []domain.ProductActivity {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ProductActivity, len(r.entries))
	copy(out, r.entries)
	return out
}
