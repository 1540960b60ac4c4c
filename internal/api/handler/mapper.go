package handler

import (
	"github.com/techhunt/api/internal/core/domain"
)

// --- Domain → HTTP response ---

func flatten(extra map[string]any, size int) document {
	doc := make(document, len(extra)+size)
	for k, v := range extra {
		doc[k] = v
	}
	return doc
}

func toUserDocument(u *domain.User) document {
	doc := flatten(u.Profile, 3)
	// The stored bcrypt hash never leaves the service.
	delete(doc, "password")
	doc["_id"] = u.ID
	doc["email"] = u.Email
	if u.Role != domain.RoleNone {
		doc["role"] = string(u.Role)
	}
	return doc
}

func toProductDocument(p *domain.Product) document {
	doc := flatten(p.Attributes, 4)
	doc["_id"] = p.ID
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	doc["tags"] = tags
	doc["upvotes"] = p.Upvotes
	if p.Reported {
		doc["reported"] = true
	}
	return doc
}

func toReviewDocument(r *domain.Review) document {
	doc := flatten(r.Content, 2)
	doc["_id"] = r.ID
	doc["roomId"] = r.RoomID
	return doc
}

func toCartDocument(it *domain.CartItem) document {
	doc := flatten(it.Fields, 3)
	doc["_id"] = it.ID
	if it.Email != "" {
		doc["email"] = it.Email
	}
	if it.ProductID != "" {
		doc["productId"] = it.ProductID
	}
	return doc
}

func toDocuments[T any](items []T, fn func(T) document) []document {
	out := make([]document, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

func toInsertResponse(r *domain.InsertResult) insertResponse {
	return insertResponse{Acknowledged: true, InsertedID: r.InsertedID}
}

func toUpdateResponse(r *domain.UpdateResult) updateResponse {
	return updateResponse{Acknowledged: true, MatchedCount: r.MatchedCount, ModifiedCount: r.ModifiedCount}
}

func toDeleteResponse(r *domain.DeleteResult) deleteResponse {
	return deleteResponse{Acknowledged: true, DeletedCount: r.DeletedCount}
}

// --- HTTP request → domain ---

func toReview(payload map[string]any) *domain.Review {
	content := make(map[string]any, len(payload))
	for k, v := range payload {
		if k == "_id" || k == "roomId" {
			continue
		}
		content[k] = v
	}
	return &domain.Review{RoomID: stringField(payload, "roomId"), Content: content}
}

func toCartItem(payload map[string]any) *domain.CartItem {
	item := &domain.CartItem{
		Email:     stringField(payload, "email"),
		ProductID: stringField(payload, "productId"),
		Fields:    make(map[string]any, len(payload)),
	}
	for k, v := range payload {
		switch {
		case k == "_id",
			k == "email" && item.Email != "",
			k == "productId" && item.ProductID != "":
			continue
		}
		item.Fields[k] = v
	}
	return item
}
