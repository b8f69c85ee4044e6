package engagement

import "errors"

var (
	// ErrUnauthenticated indicates no resolved actor identity
	// Views and likes require identity; anonymous actions never reach the ledger
	ErrUnauthenticated = errors.New("authentication required")

	// ErrContentNotFound indicates the content item being engaged doesn't exist
	ErrContentNotFound = errors.New("content not found")

	// ErrToggleContention indicates a like toggle lost the per-key race
	// repeatedly and gave up
	ErrToggleContention = errors.New("like toggle contention, retry")
)
