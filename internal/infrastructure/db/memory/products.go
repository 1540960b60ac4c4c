package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/techhunt/api/internal/core/domain"
)

type ProductRepository struct {
	products *collection[domain.Product]
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: newCollection[domain.Product]()}
}

// Seed inserts p and returns its assigned id.
func (r *ProductRepository) Seed(p domain.Product) string {
	return r.products.insert(func(id string) *domain.Product {
		doc := cloneProduct(&p)
		doc.ID = id
		return doc
	})
}

func (r *ProductRepository) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := []*domain.Product{}
	r.products.each(func(_ string, p *domain.Product) bool {
		out = append(out, cloneProduct(p))
		return true
	})
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	var out *domain.Product
	if !r.products.get(id, func(p *domain.Product) { out = cloneProduct(p) }) {
		return nil, domain.ErrProductNotFound
	}
	return out, nil
}

func (r *ProductRepository) IncrementUpvotes(_ context.Context, id string) (*domain.Product, error) {
	var out *domain.Product
	if !r.products.update(id, func(p *domain.Product) {
		p.Upvotes++
		out = cloneProduct(p)
	}) {
		return nil, domain.ErrProductNotFound
	}
	return out, nil
}

func (r *ProductRepository) MarkReported(_ context.Context, id string) (*domain.Product, error) {
	var out *domain.Product
	if !r.products.update(id, func(p *domain.Product) {
		p.Reported = true
		out = cloneProduct(p)
	}) {
		return nil, domain.ErrProductNotFound
	}
	return out, nil
}

func (r *ProductRepository) Search(_ context.Context, term string, skip, limit int64) ([]*domain.Product, error) {
	term = strings.ToLower(term)
	out := []*domain.Product{}
	var seen int64
	r.products.each(func(_ string, p *domain.Product) bool {
		if term != "" && !slices.ContainsFunc(p.Tags, func(tag string) bool {
			return strings.Contains(strings.ToLower(tag), term)
		}) {
			return true
		}
		seen++
		if seen <= skip {
			return true
		}
		out = append(out, cloneProduct(p))
		return int64(len(out)) < limit
	})
	return out, nil
}

func cloneProduct(p *domain.Product) *domain.Product {
	c := *p
	c.Tags = slices.Clone(p.Tags)
	c.Attributes = cloneFields(p.Attributes)
	return &c
}
