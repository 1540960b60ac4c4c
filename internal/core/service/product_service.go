package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/core/ports"
	"github.com/techhunt/api/internal/infrastructure/metrics"
)

type ProductService struct {
	repo     ports.ProductRepository
	cache    ports.ProductCache      // optional
	activity ports.ActivityPublisher // optional
	logger   zerolog.Logger
}

// NewProductService returns a ProductService. cache and activity may be nil.
func NewProductService(repo ports.ProductRepository, cache ports.ProductCache, activity ports.ActivityPublisher, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, activity: activity, logger: logger}
}

func (s *ProductService) Menu(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// Get reads through the product cache when one is configured. Cache errors
// are logged and fall back to the repository.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache != nil {
		p, ok, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			metrics.ProductCacheTotal.WithLabelValues("error").Inc()
			s.logger.Warn().Err(err).Str("product_id", id).Msg("product cache read failed")
		case ok:
			metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
			return p, nil
		default:
			metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.remember(ctx, p)
	return p, nil
}

// Upvote increments the product's counter by exactly one.
func (s *ProductService) Upvote(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.IncrementUpvotes(ctx, id)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, p, domain.ActivityUpvote)
	return p, nil
}

// Report flags the product as reported. Reporting twice is a no-op success.
func (s *ProductService) Report(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.repo.MarkReported(ctx, id)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, p, domain.ActivityReport)
	return p, nil
}

// Search returns at most one page of products whose tags contain query.Term.
func (s *ProductService) Search(ctx context.Context, query domain.ProductSearch) ([]*domain.Product, error) {
	return s.repo.Search(ctx, query.Term, query.Skip(), domain.SearchPageSize)
}

func (s *ProductService) afterMutation(ctx context.Context, p *domain.Product, kind domain.ActivityKind) {
	metrics.ProductMutationsTotal.WithLabelValues(string(kind)).Inc()
	s.remember(ctx, p)
	if s.activity != nil {
		s.activity.Publish(domain.ProductActivity{
			ProductID: p.ID,
			Kind:      kind,
			Upvotes:   p.Upvotes,
			At:        time.Now().UTC(),
		})
	}
}

func (s *ProductService) remember(ctx context.Context, p *domain.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn().Err(err).Str("product_id", p.ID).Msg("product cache write failed")
	}
}
