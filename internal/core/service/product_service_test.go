package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techhunt/api/internal/core/domain"
	"github.com/techhunt/api/internal/infrastructure/db/memory"
)

// stubCache is an in-process ports.ProductCache.
type stubCache struct {
	mu      sync.Mutex
	items   map[string]domain.Product
	getErr  error
	setErr  error
	gets    int
	setsFor []string
}

func newStubCache() *stubCache {
	return &stubCache{items: make(map[string]domain.Product)}
}

func (c *stubCache) Get(_ context.Context, id string) (*domain.Product, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	p, ok := c.items[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *stubCache) Set(_ context.Context, p *domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setsFor = append(c.setsFor, p.ID)
	if c.setErr != nil {
		return c.setErr
	}
	c.items[p.ID] = *p
	return nil
}

// recordingPublisher captures published activity.
type recordingPublisher struct {
	mu      sync.Mutex
	entries []domain.ProductActivity
}

func (p *recordingPublisher) Publish(a domain.ProductActivity) {
	p.mu.Lock()
	p.entries = append(p.entries, a)
	p.mu.Unlock()
}

func seedProducts(repo *memory.ProductRepository) (camera, laptop string) {
	camera = repo.Seed(domain.Product{Tags: []string{"Photo", "Camera"}, Attributes: map[string]any{"name": "Cam X"}})
	laptop = repo.Seed(domain.Product{Tags: []string{"Laptop"}, Attributes: map[string]any{"name": "Book Pro"}})
	return camera, laptop
}

func TestProductService_Upvote(t *testing.T) {
	repo := memory.NewProductRepository()
	camera, _ := seedProducts(repo)
	pub := &recordingPublisher{}
	svc := NewProductService(repo, nil, pub, zerolog.Nop())
	ctx := context.Background()

	first, err := svc.Upvote(ctx, camera)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Upvotes)

	second, err := svc.Upvote(ctx, camera)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Upvotes, "response reflects the post-update state")

	require.Len(t, pub.entries, 2)
	assert.Equal(t, domain.ActivityUpvote, pub.entries[1].Kind)
	assert.Equal(t, camera, pub.entries[1].ProductID)
	assert.Equal(t, int64(2), pub.entries[1].Upvotes)
	assert.False(t, pub.entries[1].At.IsZero())
}

func TestProductService_Upvote_Concurrent(t *testing.T) {
	repo := memory.NewProductRepository()
	camera, _ := seedProducts(repo)
	svc := NewProductService(repo, nil, nil, zerolog.Nop())
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Upvote(ctx, camera)
		}()
	}
	wg.Wait()

	p, err := svc.Get(ctx, camera)
	require.NoError(t, err)
	assert.Equal(t, int64(n), p.Upvotes)
}

func TestProductService_Mutations_NotFound(t *testing.T) {
	repo := memory.NewProductRepository()
	pub := &recordingPublisher{}
	svc := NewProductService(repo, nil, pub, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Upvote(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.Report(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	assert.Empty(t, pub.entries, "nothing is published for a missing product")
}

func TestProductService_Report_Idempotent(t *testing.T) {
	repo := memory.NewProductRepository()
	camera, _ := seedProducts(repo)
	svc := NewProductService(repo, nil, nil, zerolog.Nop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		p, err := svc.Report(ctx, camera)
		require.NoError(t, err)
		assert.True(t, p.Reported)
		assert.Zero(t, p.Upvotes)
	}
}

func TestProductService_Search(t *testing.T) {
	repo := memory.NewProductRepository()
	for i := range 45 {
		tag := "gadget"
		if i%3 == 0 {
			tag = "Camera"
		}
		repo.Seed(domain.Product{Tags: []string{tag}, Attributes: map[string]any{"n": fmt.Sprint(i)}})
	}
	svc := NewProductService(repo, nil, nil, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name  string
		query domain.ProductSearch
		want  int
	}{
		{"first page of everything", domain.ProductSearch{}, domain.SearchPageSize},
		{"explicit first page", domain.ProductSearch{Page: 1}, 20},
		{"second page", domain.ProductSearch{Page: 2}, 20},
		{"last partial page", domain.ProductSearch{Page: 3}, 5},
		{"past the end", domain.ProductSearch{Page: 4}, 0},
		{"case-insensitive substring", domain.ProductSearch{Term: "CAM"}, 15},
		{"no match", domain.ProductSearch{Term: "drone"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestProductService_Search_PagesDoNotOverlap(t *testing.T) {
	repo := memory.NewProductRepository()
	for range 25 {
		repo.Seed(domain.Product{Tags: []string{"x"}})
	}
	svc := NewProductService(repo, nil, nil, zerolog.Nop())
	ctx := context.Background()

	first, err := svc.Search(ctx, domain.ProductSearch{Page: 1})
	require.NoError(t, err)
	second, err := svc.Search(ctx, domain.ProductSearch{Page: 2})
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, p := range append(first, second...) {
		assert.False(t, seen[p.ID], "product %s returned twice", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 25)
}

func TestProductService_Get_ReadsThroughCache(t *testing.T) {
	repo := memory.NewProductRepository()
	camera, _ := seedProducts(repo)
	cache := newStubCache()
	svc := NewProductService(repo, cache, nil, zerolog.Nop())
	ctx := context.Background()

	p, err := svc.Get(ctx, camera)
	require.NoError(t, err)
	assert.Equal(t, "Cam X", p.Attributes["name"])
	assert.Equal(t, []string{camera}, cache.setsFor, "miss populates the cache")

	cache.items[camera] = domain.Product{ID: camera, Attributes: map[string]any{"name": "cached"}}
	p, err = svc.Get(ctx, camera)
	require.NoError(t, err)
	assert.Equal(t, "cached", p.Attributes["name"], "hit is served from the cache")
}

func TestProductService_Get_CacheFailureFallsBack(t *testing.T) {
	repo := memory.NewProductRepository()
	camera, _ := seedProducts(repo)
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewProductService(repo, cache, nil, zerolog.Nop())

	p, err := svc.Get(context.Background(), camera)
	require.NoError(t, err)
	assert.Equal(t, "Cam X", p.Attributes["name"])
}

func TestProductService_Mutation_RefreshesCache(t *testing.T) {
	repo := memory.NewProductRepository()
	camera, _ := seedProducts(repo)
	cache := newStubCache()
	svc := NewProductService(repo, cache, nil, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Get(ctx, camera)
	require.NoError(t, err)
	_, err = svc.Upvote(ctx, camera)
	require.NoError(t, err)

	p, err := svc.Get(ctx, camera)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Upvotes, "cached copy is the post-update document")
}

func TestProductService_Menu(t *testing.T) {
	repo := memory.NewProductRepository()
	camera, laptop := seedProducts(repo)
	svc := NewProductService(repo, nil, nil, zerolog.Nop())

	all, err := svc.Menu(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, camera, all[0].ID)
	assert.Equal(t, laptop, all[1].ID)
}
