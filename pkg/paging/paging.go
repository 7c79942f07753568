package paging

import (
	"errors"
	"strconv"
)

const (
	DefaultFrom = 0
	DefaultSize = 10
)

// ErrInvalid is returned when from is negative or size is not positive.
var ErrInvalid = errors.New("'from' and 'size' should be positive")

// Query is a zero-based offset plus page length, as sent by clients.
type Query struct {
	From int
	Size int
}

// Validate checks that From >= 0 and Size > 0.
func (q Query) Validate() error {
	if q.From < 0 || q.Size <= 0 {
		return ErrInvalid
	}
	return nil
}

// Limit is the page length.
func (q Query) Limit() int {
	return q.Size
}

// Offset snaps From down to the start of the page that contains it,
// so from=5,size=10 reads the first page.
func (q Query) Offset() int {
	if q.Size <= 0 {
		return 0
	}
	return (q.From / q.Size) * q.Size
}

// Parse reads raw from/size query values, falling back to the defaults for empty values.
// Non-numeric values fail with ErrInvalid. Range checks are left to Validate.
func Parse(from, size string) (Query, error) {
	q := Query{From: DefaultFrom, Size: DefaultSize}
	var err error
	if from != "" {
		if q.From, err = strconv.Atoi(from); err != nil {
			return Query{}, ErrInvalid
		}
	}
	if size != "" {
		if q.Size, err = strconv.Atoi(size); err != nil {
			return Query{}, ErrInvalid
		}
	}
	return q, nil
}
