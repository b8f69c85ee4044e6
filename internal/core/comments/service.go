package comments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"Inkwell/internal/auth"
	"Inkwell/internal/core/counters"
	"Inkwell/internal/realtime"
)

// maxCommentLength caps comment text length in bytes
const maxCommentLength = 10000

// Service defines the business logic interface for comment threads
type Service interface {
	// AddComment appends a comment to a content item's thread
	AddComment(ctx context.Context, contentID int64, actorID, authorName, text string) (*AddCommentResult, error)

	// RemoveComment hard-deletes a comment
	// Only the author or a moderator may delete; the role comes from the
	// caller's identity claims
	RemoveComment(ctx context.Context, commentID int64, actorID, role string) (*RemoveCommentResult, error)

	// ListComments returns a content item's thread, newest first
	ListComments(ctx context.Context, contentID int64) ([]*Comment, error)
}

type commentService struct {
	repo     Repository
	contents ContentChecker
	counters CounterAdjuster
	bus      realtime.Publisher
	logger   *slog.Logger
}

// NewCommentService creates a new comment thread service
func NewCommentService(repo Repository, contents ContentChecker, adjuster CounterAdjuster, bus realtime.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if bus == nil {
		bus = realtime.NopPublisher{}
	}
	return &commentService{
		repo:     repo,
		contents: contents,
		counters: adjuster,
		bus:      bus,
		logger:   logger,
	}
}

func (s *commentService) AddComment(ctx context.Context, contentID int64, actorID, authorName, text string) (*AddCommentResult, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d bytes", ErrEmptyText, maxCommentLength)
	}

	exists, err := s.contents.ContentExists(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContentNotFound
	}

	comment := &Comment{
		ContentID:  contentID,
		ActorID:    actorID,
		AuthorName: authorName,
		Text:       text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	count, ok := s.adjust(ctx, contentID, +1)
	if ok {
		s.bus.Publish(realtime.Event{
			Topic:     realtime.TopicCommentAdded,
			ContentID: contentID,
			Payload: map[string]interface{}{
				"comment":       comment,
				"commentsCount": count,
			},
		})
	}

	return &AddCommentResult{Comment: comment, CommentsCount: count}, nil
}

func (s *commentService) RemoveComment(ctx context.Context, commentID int64, actorID, role string) (*RemoveCommentResult, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}

	comment, err := s.repo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.ActorID != actorID && role != auth.RoleModerator {
		return nil, ErrNotAuthorized
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	count, ok := s.adjust(ctx, comment.ContentID, -1)
	if ok {
		s.bus.Publish(realtime.Event{
			Topic:     realtime.TopicCommentDeleted,
			ContentID: comment.ContentID,
			Payload: map[string]interface{}{
				"commentId":     commentID,
				"commentsCount": count,
			},
		})
	}

	return &RemoveCommentResult{CommentsCount: count}, nil
}

func (s *commentService) ListComments(ctx context.Context, contentID int64) ([]*Comment, error) {
	thread, err := s.repo.ListByContent(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for content %d: %w", contentID, err)
	}
	if thread == nil {
		thread = []*Comment{}
	}
	return thread, nil
}

// adjust applies a comment-counter delta after the thread mutation committed
// Failure is degraded success: the row is durable, the sweep heals the drift
func (s *commentService) adjust(ctx context.Context, contentID int64, delta int64) (int64, bool) {
	count, err := s.counters.Adjust(ctx, contentID, counters.FieldComments, delta)
	if err != nil {
		if errors.Is(err, counters.ErrContentNotFound) {
			s.logger.Debug("content deleted during comment counter adjustment",
				"contentID", contentID)
		} else {
			s.logger.Error("comment counter adjustment failed, counter will drift until reconciled",
				"contentID", contentID, "delta", delta, "error", err)
		}
		return 0, false
	}
	return count, true
}
