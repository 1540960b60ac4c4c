package domain

import "errors"

const (
	// SearchPageSize is the fixed number of products returned per search page.
	SearchPageSize = 20
	// MaxSearchPage is the highest page a search accepts.
	MaxSearchPage = 1_000_000
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog item. Attributes holds the document fields the API
// does not interpret (name, image, description, ...).
type Product struct {
	ID         string
	Tags       []string
	Upvotes    int64
	Reported   bool
	Attributes map[string]any
}

// ProductSearch carries the query parameters of a paginated tag search.
type ProductSearch struct {
	Term string // case-insensitive substring matched against tags; empty matches all
	Page int    // 1-based
}

// Skip returns the number of documents to skip for the requested page. The
// page is clamped to [1, MaxSearchPage] so the result never overflows.
func (s ProductSearch) Skip() int64 {
	page := min(max(s.Page, 1), MaxSearchPage)
	return int64(page-1) * SearchPageSize
}
