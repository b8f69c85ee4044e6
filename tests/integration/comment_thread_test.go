package integration

import (
	"context"
	"testing"

	"Inkwell/internal/auth"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/counters"
	"Inkwell/internal/db/postgres"
)

// TestCommentThread_Lifecycle tests adding, listing and removing comments with
// counter maintenance
func TestCommentThread_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	contentRepo := postgres.NewContentRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	reconciler := counters.NewReconciler(contentRepo, nil)
	service := comments.NewCommentService(commentRepo, contentRepo, reconciler, nil, nil)

	item := createTestContent(t, db, "Discussed Post")

	t.Run("Add comment increments counter", func(t *testing.T) {
		result, err := service.AddComment(ctx, item.ID, "did:plc:alice", "Alice", "First!")
		if err != nil {
			t.Fatalf("Failed to add comment: %v", err)
		}
		if result.Comment.ID == 0 {
			t.Fatal("Expected a generated comment id")
		}
		if result.CommentsCount != 1 {
			t.Errorf("Expected comments_count = 1, got %d", result.CommentsCount)
		}
	})

	t.Run("Thread lists newest first", func(t *testing.T) {
		if _, err := service.AddComment(ctx, item.ID, "did:plc:bob", "Bob", "Second"); err != nil {
			t.Fatalf("Failed to add comment: %v", err)
		}

		thread, err := service.ListComments(ctx, item.ID)
		if err != nil {
			t.Fatalf("Failed to list comments: %v", err)
		}
		if len(thread) != 2 {
			t.Fatalf("Expected 2 comments, got %d", len(thread))
		}
		if thread[0].Text != "Second" {
			t.Errorf("Expected newest comment first, got %q", thread[0].Text)
		}
	})

	t.Run("Author removes own comment", func(t *testing.T) {
		added, err := service.AddComment(ctx, item.ID, "did:plc:carol", "Carol", "Delete me")
		if err != nil {
			t.Fatalf("Failed to add comment: %v", err)
		}

		result, err := service.RemoveComment(ctx, added.Comment.ID, "did:plc:carol", auth.RoleUser)
		if err != nil {
			t.Fatalf("Failed to remove comment: %v", err)
		}
		if result.CommentsCount != 2 {
			t.Errorf("Expected comments_count = 2 after removal, got %d", result.CommentsCount)
		}
	})

	t.Run("Stranger cannot remove", func(t *testing.T) {
		added, err := service.AddComment(ctx, item.ID, "did:plc:dave", "Dave", "Protected")
		if err != nil {
			t.Fatalf("Failed to add comment: %v", err)
		}

		if _, err := service.RemoveComment(ctx, added.Comment.ID, "did:plc:mallory", auth.RoleUser); err != comments.ErrNotAuthorized {
			t.Errorf("Expected ErrNotAuthorized, got %v", err)
		}

		thread, err := service.ListComments(ctx, item.ID)
		if err != nil {
			t.Fatalf("Failed to list comments: %v", err)
		}
		found := false
		for _, c := range thread {
			if c.ID == added.Comment.ID {
				found = true
			}
		}
		if !found {
			t.Error("Expected comment to survive unauthorized removal")
		}
	})

	t.Run("Moderator removes any comment", func(t *testing.T) {
		thread, err := service.ListComments(ctx, item.ID)
		if err != nil {
			t.Fatalf("Failed to list comments: %v", err)
		}
		target := thread[0]

		if _, err := service.RemoveComment(ctx, target.ID, "did:plc:mod", auth.RoleModerator); err != nil {
			t.Fatalf("Expected moderator removal to succeed: %v", err)
		}
	})
}

// TestCommentThread_ContentCascade tests that deleting content removes its
// comments and engagement facts
func TestCommentThread_ContentCascade(t *testing.T) {
	db := setupTestDB(t)
	defer func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	}()

	ctx := context.Background()
	contentRepo := postgres.NewContentRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	reconciler := counters.NewReconciler(contentRepo, nil)
	service := comments.NewCommentService(commentRepo, contentRepo, reconciler, nil, nil)

	item := createTestContent(t, db, "Doomed Thread")
	if _, err := service.AddComment(ctx, item.ID, "did:plc:alice", "Alice", "Gone soon"); err != nil {
		t.Fatalf("Failed to add comment: %v", err)
	}

	if err := contentRepo.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Failed to delete content: %v", err)
	}

	var orphans int64
	if err := db.QueryRow("SELECT COUNT(*) FROM comments WHERE content_id = $1", item.ID).Scan(&orphans); err != nil {
		t.Fatalf("Failed to count comments: %v", err)
	}
	if orphans != 0 {
		t.Errorf("Expected cascade to remove comments, found %d", orphans)
	}
}
