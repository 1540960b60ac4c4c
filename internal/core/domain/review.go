package domain

// Review is a free-form review attached to a room (product) identifier.
type Review struct {
	ID      string
	RoomID  string
	Content map[string]any
}
