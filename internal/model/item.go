package model

// Item is a thing listed for sharing by its owner.
type Item struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   *int64 // request this item was listed in response to, if any
}

// IsOwnedBy reports whether userID owns the item.
func (i Item) IsOwnedBy(userID int64) bool {
	return i.OwnerID == userID
}
