package domain

// CartItem is an entry of the userProduct collection. Email and ProductID are
// the references clients usually send; everything else lands in Fields.
type CartItem struct {
	ID        string
	Email     string
	ProductID string
	Fields    map[string]any
}
