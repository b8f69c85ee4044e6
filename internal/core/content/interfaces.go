package content

import (
	"context"

	"Inkwell/internal/core/comments"
)

// Repository defines the data access interface for content items
type Repository interface {
	// Create inserts a new item and fills in its server-assigned id and
	// timestamps
	Create(ctx context.Context, item *ContentItem) error

	// GetByID retrieves a single item including current counter values
	// Returns ErrContentNotFound if absent
	GetByID(ctx context.Context, id int64) (*ContentItem, error)

	// List retrieves items newest first
	List(ctx context.Context, limit, offset int) ([]*ContentItem, error)

	// Count returns the total number of items
	Count(ctx context.Context) (int64, error)

	// Update persists mutable authoring fields (never the counters)
	// Returns ErrContentNotFound if absent
	Update(ctx context.Context, item *ContentItem) error

	// Delete removes the item; engagement facts and comments referencing it
	// are removed by the schema's cascade rules
	Delete(ctx context.Context, id int64) error

	// Stats aggregates counters across all items
	Stats(ctx context.Context) (*Stats, error)
}

// CommentLister is the slice of the comment store the content view needs
type CommentLister interface {
	ListByContent(ctx context.Context, contentID int64) ([]*comments.Comment, error)
}

// LikeReader reports whether a viewer has liked an item
// Satisfied by the engagement ledger
type LikeReader interface {
	HasLiked(ctx context.Context, contentID int64, actorID string) (bool, error)
}
