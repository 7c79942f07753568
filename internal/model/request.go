package model

import "time"

// ItemRequest is a public ask for an item nobody has listed yet.
type ItemRequest struct {
	ID          int64
	Description string
	RequestorID int64
	Created     time.Time
}
