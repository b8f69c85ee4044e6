package content

import "errors"

var (
	// ErrContentNotFound indicates the requested content item doesn't exist
	ErrContentNotFound = errors.New("content not found")

	// ErrMissingFields indicates a create request without required fields
	ErrMissingFields = errors.New("title, body and author are required")
)
