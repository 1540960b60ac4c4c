package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
)

// ReviewService stores and lists reviews. Reviews are append-only.
type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, r *domain.Review) (*domain.InsertResult, error) {
	res, err := s.repo.Insert(ctx, r)
	if err != nil {
		s.logger.Error().Err(err).Str("room_id", r.RoomID).Msg("failed to add review")
		return nil, err
	}
	return res, nil
}

func (s *ReviewService) ListByRoom(ctx context.Context, roomID string) ([]*domain.Review, error) {
	return s.repo.FindByRoom(ctx, roomID)
}
