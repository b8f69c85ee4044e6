package integration

import (
	"context"
	"testing"

	"Inkwell/internal/core/counters"
	"Inkwell/internal/core/engagement"
	"Inkwell/internal/db/postgres"
)

// TestRecompute_HealsDriftedCounters tests that the reconciliation sweep
// rewrites counters from ledger row counts
func TestRecompute_HealsDriftedCounters(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	contentRepo := postgres.NewContentRepository(db)
	engagementRepo := postgres.NewEngagementRepository(db)
	reconciler := counters.NewReconciler(contentRepo, nil)
	service := engagement.NewEngagementService(engagementRepo, contentRepo, reconciler, nil, nil)

	item := createTestContent(t, db, "Drifted Post")

	for i := 0; i < 3; i++ {
		if _, err := service.RecordView(ctx, item.ID, makeActorDID(i)); err != nil {
			t.Fatalf("Failed to record view: %v", err)
		}
	}
	if _, err := service.ToggleLike(ctx, item.ID, makeActorDID(0)); err != nil {
		t.Fatalf("Failed to toggle like: %v", err)
	}

	// Skew the counters the way a lost adjustment would
	if _, err := db.Exec(
		"UPDATE content SET views_count = 100, likes_count = 0 WHERE id = $1",
		item.ID); err != nil {
		t.Fatalf("Failed to skew counters: %v", err)
	}

	if err := contentRepo.RecomputeCounters(ctx); err != nil {
		t.Fatalf("Failed to recompute counters: %v", err)
	}

	stored, err := contentRepo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("Failed to get content: %v", err)
	}
	if stored.ViewsCount != 3 {
		t.Errorf("Expected views_count healed to 3, got %d", stored.ViewsCount)
	}
	if stored.LikesCount != 1 {
		t.Errorf("Expected likes_count healed to 1, got %d", stored.LikesCount)
	}
}

// TestIncrement_FloorsAtZero tests that a negative delta cannot push a counter
// below zero
func TestIncrement_FloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	contentRepo := postgres.NewContentRepository(db)

	item := createTestContent(t, db, "Floored Post")

	value, err := contentRepo.IncrementCounter(ctx, item.ID, counters.FieldLikes, -5)
	if err != nil {
		t.Fatalf("Failed to increment counter: %v", err)
	}
	if value != 0 {
		t.Errorf("Expected counter floored at 0, got %d", value)
	}
}

// TestIncrement_MissingContent tests the not-found race signal
func TestIncrement_MissingContent(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	contentRepo := postgres.NewContentRepository(db)

	if _, err := contentRepo.IncrementCounter(ctx, 999999, counters.FieldViews, 1); err != counters.ErrContentNotFound {
		t.Errorf("Expected ErrContentNotFound, got %v", err)
	}
}
