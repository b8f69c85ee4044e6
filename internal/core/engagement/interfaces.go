package engagement

import (
	"context"

	"Inkwell/internal/core/counters"
)

// Repository defines the data access interface for engagement facts
// All writes lean on the storage layer's (content_id, actor_id, kind)
// uniqueness constraint: insert, catch the conflict, report it as a no-op
type Repository interface {
	// CreateFact inserts a fact unless one already exists for the key
	// Returns created=false (no error) on a duplicate, so concurrent
	// duplicate inserts leave exactly one row and all-but-one callers
	// observe created=false
	CreateFact(ctx context.Context, fact *Fact) (created bool, err error)

	// DeleteFact removes the fact for the key if present
	// Returns deleted=false (no error) when there was nothing to delete
	DeleteFact(ctx context.Context, contentID int64, actorID string, kind Kind) (deleted bool, err error)

	// Exists is a point lookup with no side effects
	Exists(ctx context.Context, contentID int64, actorID string, kind Kind) (bool, error)

	// CountByContent counts facts of one kind for a content item
	// Used by tests and the reconciliation sweep's verification queries
	CountByContent(ctx context.Context, contentID int64, kind Kind) (int64, error)
}

// ContentChecker validates that the engaged content item exists
// This prevents recording facts against deleted or never-existing content
type ContentChecker interface {
	ContentExists(ctx context.Context, contentID int64) (bool, error)
}

// CounterAdjuster is the slice of the counter reconciler the ledger uses
// The ledger never touches counter columns directly
type CounterAdjuster interface {
	Adjust(ctx context.Context, contentID int64, field counters.Field, delta int64) (int64, error)
	Value(ctx context.Context, contentID int64, field counters.Field) (int64, error)
}
