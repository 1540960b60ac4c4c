package domain

import "errors"

// ErrInvalidID is returned when a path identifier is not a valid document id.
var ErrInvalidID = errors.New("invalid id")

// InsertResult reports the identifier assigned to an inserted document.
type InsertResult struct {
	InsertedID string
}

// UpdateResult reports how many documents an update matched and changed.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// DeleteResult reports how many documents a delete removed.
type DeleteResult struct {
	DeletedCount int64
}
