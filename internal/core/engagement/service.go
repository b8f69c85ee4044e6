package engagement

import (
	"context"
	"errors"
	"log/slog"

	"Inkwell/internal/core/counters"
	"Inkwell/internal/realtime"
)

// toggleAttempts bounds the insert/delete retry loop in ToggleLike
// Two concurrent toggles from the same actor can each lose one round to the
// other; more than a couple of rounds means something is wrong
const toggleAttempts = 3

// Service defines the business logic interface for the engagement ledger
type Service interface {
	// RecordView records a unique view for (contentID, actorID)
	// Recording twice is success with AlreadyRecorded=true, never an error
	RecordView(ctx context.Context, contentID int64, actorID string) (*ViewResult, error)

	// ToggleLike flips the actor's like on the content item
	// Returns the resulting state and the current like count
	ToggleLike(ctx context.Context, contentID int64, actorID string) (*LikeResult, error)

	// HasLiked reports whether the actor currently likes the content item
	HasLiked(ctx context.Context, contentID int64, actorID string) (bool, error)

	// HasViewed reports whether the actor's view has been counted
	HasViewed(ctx context.Context, contentID int64, actorID string) (bool, error)
}

type engagementService struct {
	repo     Repository
	contents ContentChecker
	counters CounterAdjuster
	bus      realtime.Publisher
	logger   *slog.Logger
}

// NewEngagementService creates a new engagement ledger service
func NewEngagementService(repo Repository, contents ContentChecker, adjuster CounterAdjuster, bus realtime.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if bus == nil {
		bus = realtime.NopPublisher{}
	}
	return &engagementService{
		repo:     repo,
		contents: contents,
		counters: adjuster,
		bus:      bus,
		logger:   logger,
	}
}

func (s *engagementService) RecordView(ctx context.Context, contentID int64, actorID string) (*ViewResult, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.checkContent(ctx, contentID); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateFact(ctx, &Fact{
		ContentID: contentID,
		ActorID:   actorID,
		Kind:      KindView,
	})
	if err != nil {
		return nil, err
	}

	if !created {
		// Duplicate absorbed by the uniqueness constraint. The fact row that
		// won still backs the counter, so just read the current value.
		count, err := s.counters.Value(ctx, contentID, counters.FieldViews)
		if err != nil && !errors.Is(err, counters.ErrContentNotFound) {
			return nil, err
		}
		return &ViewResult{AlreadyRecorded: true, ViewsCount: count}, nil
	}

	count, ok := s.adjust(ctx, contentID, counters.FieldViews, +1)
	if ok {
		s.bus.Publish(realtime.Event{
			Topic:     realtime.TopicViewChanged,
			ContentID: contentID,
			Payload:   map[string]interface{}{"viewsCount": count},
		})
	}

	return &ViewResult{AlreadyRecorded: false, ViewsCount: count}, nil
}

func (s *engagementService) ToggleLike(ctx context.Context, contentID int64, actorID string) (*LikeResult, error) {
	if actorID == "" {
		return nil, ErrUnauthenticated
	}
	if err := s.checkContent(ctx, contentID); err != nil {
		return nil, err
	}

	// Insert-first toggle: the unique constraint serializes concurrent
	// toggles on the same key. Losing both the insert (duplicate) and the
	// delete (row already gone) means another toggle committed in between;
	// start over.
	for attempt := 0; attempt < toggleAttempts; attempt++ {
		created, err := s.repo.CreateFact(ctx, &Fact{
			ContentID: contentID,
			ActorID:   actorID,
			Kind:      KindLike,
		})
		if err != nil {
			return nil, err
		}
		if created {
			return s.finishToggle(ctx, contentID, true), nil
		}

		deleted, err := s.repo.DeleteFact(ctx, contentID, actorID, KindLike)
		if err != nil {
			return nil, err
		}
		if deleted {
			return s.finishToggle(ctx, contentID, false), nil
		}
	}

	s.logger.Warn("like toggle exhausted retries",
		"contentID", contentID, "actorID", actorID)
	return nil, ErrToggleContention
}

// finishToggle adjusts the like counter for a committed fact mutation and
// broadcasts the new state
func (s *engagementService) finishToggle(ctx context.Context, contentID int64, liked bool) *LikeResult {
	delta := int64(+1)
	if !liked {
		delta = -1
	}

	count, ok := s.adjust(ctx, contentID, counters.FieldLikes, delta)
	if ok {
		s.bus.Publish(realtime.Event{
			Topic:     realtime.TopicLikeChanged,
			ContentID: contentID,
			Payload:   map[string]interface{}{"likesCount": count},
		})
	}

	return &LikeResult{Liked: liked, LikesCount: count}
}

func (s *engagementService) HasLiked(ctx context.Context, contentID int64, actorID string) (bool, error) {
	return s.repo.Exists(ctx, contentID, actorID, KindLike)
}

func (s *engagementService) HasViewed(ctx context.Context, contentID int64, actorID string) (bool, error) {
	return s.repo.Exists(ctx, contentID, actorID, KindView)
}

func (s *engagementService) checkContent(ctx context.Context, contentID int64) error {
	exists, err := s.contents.ContentExists(ctx, contentID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrContentNotFound
	}
	return nil
}

// adjust applies a counter delta after a committed fact mutation
// The fact is durable at this point, so adjustment failure is degraded
// success: log it, skip the broadcast, and let the reconciliation sweep heal
// the drift. Content vanishing concurrently is a benign race.
func (s *engagementService) adjust(ctx context.Context, contentID int64, field counters.Field, delta int64) (int64, bool) {
	count, err := s.counters.Adjust(ctx, contentID, field, delta)
	if err != nil {
		if errors.Is(err, counters.ErrContentNotFound) {
			s.logger.Debug("content deleted during counter adjustment",
				"contentID", contentID, "field", string(field))
		} else {
			s.logger.Error("counter adjustment failed, counter will drift until reconciled",
				"contentID", contentID, "field", string(field), "delta", delta, "error", err)
		}
		return 0, false
	}
	return count, true
}
