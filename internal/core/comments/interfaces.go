package comments

import (
	"context"

	"Inkwell/internal/core/counters"
)

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a comment and fills in its server-assigned id and
	// timestamp
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a single comment
	// Returns ErrCommentNotFound if absent
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Delete hard-deletes a comment
	// Returns ErrCommentNotFound if absent
	Delete(ctx context.Context, id int64) error

	// ListByContent retrieves a content item's thread, newest first,
	// ties broken by id descending
	ListByContent(ctx context.Context, contentID int64) ([]*Comment, error)
}

// ContentChecker validates that the commented content item exists
type ContentChecker interface {
	ContentExists(ctx context.Context, contentID int64) (bool, error)
}

// CounterAdjuster is the slice of the counter reconciler the thread store
// uses; the comment counter is never written directly
type CounterAdjuster interface {
	Adjust(ctx context.Context, contentID int64, field counters.Field, delta int64) (int64, error)
	Value(ctx context.Context, contentID int64, field counters.Field) (int64, error)
}
