package memory

import (
	"context"

	"github.com/techhunt/api/internal/core/domain"
)

type ReviewRepository struct {
	reviews *collection[domain.Review]
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{reviews: newCollection[domain.Review]()}
}

func (r *ReviewRepository) Insert(_ context.Context, rv *domain.Review) (*domain.InsertResult, error) {
	id := r.reviews.insert(func(id string) *domain.Review {
		return &domain.Review{ID: id, RoomID: rv.RoomID, Content: cloneFields(rv.Content)}
	})
	return &domain.InsertResult{InsertedID: id}, nil
}

func (r *ReviewRepository) FindByRoom(_ context.Context, roomID string) ([]*domain.Review, error) {
	out := []*domain.Review{}
	r.reviews.each(func(_ string, rv *domain.Review) bool {
		if rv.RoomID == roomID {
			out = append(out, &domain.Review{ID: rv.ID, RoomID: rv.RoomID, Content: cloneFields(rv.Content)})
		}
		return true
	})
	return out, nil
}
