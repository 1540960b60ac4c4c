package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
)

// CartService manages userProduct entries.
// TODO: scope List and Remove to the authenticated email once the dashboard
// sends a bearer token.
type CartService struct {
	repo   ports.CartRepository
	logger zerolog.Logger
}

func NewCartService(repo ports.CartRepository, logger zerolog.Logger) *CartService {
	return &CartService{repo: repo, logger: logger}
}

func (s *CartService) Add(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	res, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", item.ProductID).Msg("failed to add to cart")
		return nil, err
	}
	return res, nil
}

func (s *CartService) List(ctx context.Context) ([]*domain.CartItem, error) {
	return s.repo.FindAll(ctx)
}

func (s *CartService) Remove(ctx context.Context, id string) (*domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
