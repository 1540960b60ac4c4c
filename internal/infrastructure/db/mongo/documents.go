package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/techhunt/api/internal/core/domain"
)

// parseID converts a path identifier into an ObjectID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// insertedID renders the id returned by InsertOne as a string.
func insertedID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

// withoutKeys copies m without the given keys. The result is used as an
// inline map, which must not collide with struct fields.
func withoutKeys(m map[string]any, keys ...string) bson.M {
	out := make(bson.M, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// toPlain converts nested bson values decoded into an inline map into plain
// Go maps and slices so they serialise as ordinary JSON.
func toPlain(m bson.M) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case bson.M:
		return toPlain(t)
	case bson.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plainValue(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC()
	default:
		return v
	}
}

type userDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Email   string             `bson:"email"`
	Role    string             `bson:"role,omitempty"`
	Profile bson.M             `bson:",inline"`
}

func newUserDoc(u *domain.User) userDoc {
	return userDoc{
		Email:   u.Email,
		Role:    string(u.Role),
		Profile: withoutKeys(u.Profile, "_id", "email", "role"),
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:      d.ID.Hex(),
		Email:   d.Email,
		Role:    domain.Role(d.Role),
		Profile: toPlain(d.Profile),
	}
}

type productDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Tags       []string           `bson:"tags,omitempty"`
	Upvotes    int64              `bson:"upvotes"`
	Reported   bool               `bson:"reported,omitempty"`
	Attributes bson.M             `bson:",inline"`
}

func (d productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:         d.ID.Hex(),
		Tags:       d.Tags,
		Upvotes:    d.Upvotes,
		Reported:   d.Reported,
		Attributes: toPlain(d.Attributes),
	}
}

type reviewDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	RoomID  string             `bson:"roomId"`
	Content bson.M             `bson:",inline"`
}

func newReviewDoc(r *domain.Review) reviewDoc {
	return reviewDoc{RoomID: r.RoomID, Content: withoutKeys(r.Content, "_id", "roomId")}
}

func (d reviewDoc) toDomain() *domain.Review {
	return &domain.Review{ID: d.ID.Hex(), RoomID: d.RoomID, Content: toPlain(d.Content)}
}

// cartDoc is a userProduct entry. The collection takes arbitrary client
// documents, so email and productId may hold any BSON type; only string
// values map onto the CartItem fields, everything else stays in Fields.
type cartDoc bson.M

func newCartDoc(it *domain.CartItem) cartDoc {
	doc := cartDoc(withoutKeys(it.Fields, "_id"))
	if it.Email != "" {
		doc["email"] = it.Email
	}
	if it.ProductID != "" {
		doc["productId"] = it.ProductID
	}
	return doc
}

func (d cartDoc) toDomain() *domain.CartItem {
	item := &domain.CartItem{}
	if oid, ok := d["_id"].(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	extracted := []string{"_id"}
	if email, ok := d["email"].(string); ok {
		item.Email = email
		extracted = append(extracted, "email")
	}
	if productID, ok := d["productId"].(string); ok {
		item.ProductID = productID
		extracted = append(extracted, "productId")
	}
	item.Fields = toPlain(withoutKeys(d, extracted...))
	return item
}
