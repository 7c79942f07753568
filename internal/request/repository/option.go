package repository

import "time"

// CreateRequestOptions holds parameters for inserting a new ItemRequest.
type CreateRequestOptions struct {
	Description string
	RequestorID int64
	Created     time.Time
}

// ListRequestsOptions filters ListRequests. Zero-valued fields are ignored.
type ListRequestsOptions struct {
	RequestorID        int64 // only requests of this user
	ExcludeRequestorID int64 // skip requests of this user
	Limit              int
	Offset             int
}
