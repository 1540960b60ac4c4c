package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
	"github.com/techhunt/api/internal/infrastructure/metrics"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService that persists each entry to
// the activity audit collection.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Record persists a single activity entry.
func (s *activityService) Record(ctx context.Context, a domain.ProductActivity) error {
	start := time.Now()
	if a.At.IsZero() {
		a.At = start.UTC()
	}

	if err := s.repo.Insert(ctx, &a); err != nil {
		metrics.ActivityRecordDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityRecordDuration.WithLabelValues(string(a.Kind)).Observe(time.Since(start).Seconds())
	s.log.Debug().
		Str("product_id", a.ProductID).
		Str("kind", string(a.Kind)).
		Int64("upvotes", a.Upvotes).
		Msg("activity recorded")
	return nil
}
