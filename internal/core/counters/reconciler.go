package counters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Field names a denormalized counter column on a content item
type Field string

const (
	FieldViews    Field = "views"
	FieldLikes    Field = "likes"
	FieldComments Field = "comments"
)

// ErrContentNotFound indicates the content item no longer exists
// Callers treat this as a non-fatal race: the item was deleted between their
// own mutation and the counter adjustment
var ErrContentNotFound = errors.New("content not found for counter adjustment")

// Store is the storage primitive behind the reconciler
// Increment must be a single conditional arithmetic operation at the storage
// layer, never a read-modify-write from application memory
type Store interface {
	// IncrementCounter atomically adds delta to a counter column and returns
	// the new value; returns ErrContentNotFound if the item is gone
	IncrementCounter(ctx context.Context, contentID int64, field Field, delta int64) (int64, error)

	// GetCounter reads the current value of a counter column
	GetCounter(ctx context.Context, contentID int64, field Field) (int64, error)

	// RecomputeCounters rewrites every counter column from the underlying
	// ledger/thread row counts
	RecomputeCounters(ctx context.Context) error
}

// Reconciler is the only writer of the three counter fields
// Every accepted ledger or thread mutation funnels exactly one Adjust call
// through it, after the mutation commits
type Reconciler struct {
	store  Store
	logger *slog.Logger
}

// NewReconciler creates a reconciler over the given store
func NewReconciler(store Store, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{store: store, logger: logger}
}

// Adjust applies a +1/-1 delta to one counter and returns the new value
func (r *Reconciler) Adjust(ctx context.Context, contentID int64, field Field, delta int64) (int64, error) {
	value, err := r.store.IncrementCounter(ctx, contentID, field, delta)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return 0, ErrContentNotFound
		}
		return 0, fmt.Errorf("failed to adjust %s counter for content %d: %w", field, contentID, err)
	}
	return value, nil
}

// Value reads the current counter without adjusting it
// Used when a duplicate ledger mutation was absorbed and the caller still
// needs the current count for its response
func (r *Reconciler) Value(ctx context.Context, contentID int64, field Field) (int64, error) {
	value, err := r.store.GetCounter(ctx, contentID, field)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return 0, ErrContentNotFound
		}
		return 0, fmt.Errorf("failed to read %s counter for content %d: %w", field, contentID, err)
	}
	return value, nil
}

// RunSweep periodically recomputes all counters from the ledger
// A counter adjustment that failed after its fact committed leaves a bounded
// drift; the sweep heals it. Blocks until ctx is cancelled.
func (r *Reconciler) RunSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.store.RecomputeCounters(ctx); err != nil {
				r.logger.Error("counter reconciliation sweep failed", "error", err)
				continue
			}
			r.logger.Debug("counter reconciliation sweep completed")
		}
	}
}
