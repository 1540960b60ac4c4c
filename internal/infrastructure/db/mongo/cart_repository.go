package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techhunt/api/internal/core/domain"
)

// CartRepository stores userProduct entries.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCart)}
}

func (r *CartRepository) Insert(ctx context.Context, item *domain.CartItem) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, newCartDoc(item))
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return &domain.InsertResult{InsertedID: insertedID(res.InsertedID)}, nil
}

func (r *CartRepository) FindAll(ctx context.Context) ([]*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}

	items := make([]*domain.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, cartDoc(d).toDomain())
	}
	return items, nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
