package domain

import "time"

// ActivityKind identifies the product mutation an activity entry records.
type ActivityKind string

const (
	ActivityUpvote ActivityKind = "upvote"
	ActivityReport ActivityKind = "report"
)

// ProductActivity is an audit entry written after a product mutation.
type ProductActivity struct {
	ProductID string
	Kind      ActivityKind
	Upvotes   int64
	At        time.Time
}
