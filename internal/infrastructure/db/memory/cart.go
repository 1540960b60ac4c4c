package memory

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

type CartRepository struct {
	items *collection[domain.CartItem]
}

func NewCartRepository() *CartRepository {
	return &CartRepository{items: newCollection[domain.CartItem]()}
}

func (r *CartRepository) Insert(_ context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	id := r.items.insert(func(id string) *domain.CartItem {
		doc := cloneCartItem(item)
		doc.ID = id
		return doc
	})
	return &domain.InsertResult{InsertedID: id}, nil
}

func (r *CartRepository) FindAll(_ context.Context) ([]*domain.CartItem, error) {
	out := []*domain.CartItem{}
	r.items.each(func(_ string, it *domain.CartItem) bool {
		out = append(out, cloneCartItem(it))
		return true
	})
	return out, nil
}

func (r *CartRepository) Delete(_ context.Context, id string) (*domain.DeleteResult, error) {
	if r.items.remove(id) {
		return &domain.DeleteResult{DeletedCount: 1}, nil
	}
	return &domain.DeleteResult{}, nil
}

func cloneCartItem(it *domain.CartItem) *domain.CartItem {
	c := *it
	c.Fields = cloneFields(it.Fields)
	return &c
}
