package integration

import (
	"context"
	"sync"
	"testing"

	"Inkwell/internal/core/counters"
	"Inkwell/internal/core/engagement"
	"Inkwell/internal/db/postgres"
)

// TestViewLedger_Idempotency tests that repeated views from one actor count once
func TestViewLedger_Idempotency(t *testing.T) {
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

	item := createTestContent(t, db, "Viewed Post")

	t.Run("First view counts", func(t *testing.T) {
		result, err := service.RecordView(ctx, item.ID, "did:plc:viewer1")
		if err != nil {
			t.Fatalf("Failed to record view: %v", err)
		}
		if result.AlreadyRecorded {
			t.Error("Expected first view to be newly recorded")
		}
		if result.ViewsCount != 1 {
			t.Errorf("Expected views_count = 1, got %d", result.ViewsCount)
		}
	})

	t.Run("Repeat view is absorbed", func(t *testing.T) {
		result, err := service.RecordView(ctx, item.ID, "did:plc:viewer1")
		if err != nil {
			t.Fatalf("Failed to record repeat view: %v", err)
		}
		if !result.AlreadyRecorded {
			t.Error("Expected repeat view to be reported as already recorded")
		}
		if result.ViewsCount != 1 {
			t.Errorf("Expected views_count to stay at 1, got %d", result.ViewsCount)
		}
	})

	t.Run("Distinct actors each count", func(t *testing.T) {
		result, err := service.RecordView(ctx, item.ID, "did:plc:viewer2")
		if err != nil {
			t.Fatalf("Failed to record view: %v", err)
		}
		if result.ViewsCount != 2 {
			t.Errorf("Expected views_count = 2, got %d", result.ViewsCount)
		}
	})

	t.Run("Counter matches ledger rows", func(t *testing.T) {
		rows, err := engagementRepo.CountByContent(ctx, item.ID, engagement.KindView)
		if err != nil {
			t.Fatalf("Failed to count ledger rows: %v", err)
		}

		stored, err := contentRepo.GetByID(ctx, item.ID)
		if err != nil {
			t.Fatalf("Failed to get content: %v", err)
		}
		if stored.ViewsCount != rows {
			t.Errorf("Counter %d does not match %d ledger rows", stored.ViewsCount, rows)
		}
	})
}

// TestLikeToggle_RoundTrip tests toggling a like on and back off
func TestLikeToggle_RoundTrip(t *testing.T) {
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

	item := createTestContent(t, db, "Liked Post")
	actor := "did:plc:liker"

	result, err := service.ToggleLike(ctx, item.ID, actor)
	if err != nil {
		t.Fatalf("Failed to toggle like on: %v", err)
	}
	if !result.Liked || result.LikesCount != 1 {
		t.Errorf("Expected liked=true count=1, got liked=%v count=%d", result.Liked, result.LikesCount)
	}

	liked, err := service.HasLiked(ctx, item.ID, actor)
	if err != nil {
		t.Fatalf("Failed to check like state: %v", err)
	}
	if !liked {
		t.Error("Expected HasLiked = true after toggle on")
	}

	result, err = service.ToggleLike(ctx, item.ID, actor)
	if err != nil {
		t.Fatalf("Failed to toggle like off: %v", err)
	}
	if result.Liked || result.LikesCount != 0 {
		t.Errorf("Expected liked=false count=0, got liked=%v count=%d", result.Liked, result.LikesCount)
	}

	liked, err = service.HasLiked(ctx, item.ID, actor)
	if err != nil {
		t.Fatalf("Failed to check like state: %v", err)
	}
	if liked {
		t.Error("Expected HasLiked = false after toggle off")
	}
}

// TestLikeToggle_ConcurrentActors tests that concurrent likes from distinct
// actors all land and the counter converges to the ledger row count
func TestLikeToggle_ConcurrentActors(t *testing.T) {
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

	item := createTestContent(t, db, "Popular Post")

	const actors = 10
	var wg sync.WaitGroup
	errs := make(chan error, actors)
	for i := 0; i < actors; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := service.ToggleLike(ctx, item.ID, makeActorDID(n))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("Concurrent toggle failed: %v", err)
		}
	}

	stored, err := contentRepo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("Failed to get content: %v", err)
	}
	if stored.LikesCount != actors {
		t.Errorf("Expected likes_count = %d, got %d", actors, stored.LikesCount)
	}
}

// TestEngagement_ContentGone tests that engagement against missing content fails
func TestEngagement_ContentGone(t *testing.T) {
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

	if _, err := service.RecordView(ctx, 999999, "did:plc:viewer1"); err != engagement.ErrContentNotFound {
		t.Errorf("Expected ErrContentNotFound, got %v", err)
	}
	if _, err := service.ToggleLike(ctx, 999999, "did:plc:liker"); err != engagement.ErrContentNotFound {
		t.Errorf("Expected ErrContentNotFound, got %v", err)
	}
}
