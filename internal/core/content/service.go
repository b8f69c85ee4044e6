package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"Inkwell/internal/core/comments"
	"Inkwell/internal/realtime"
)

const (
	// DefaultPageSize matches the public listing page length
	DefaultPageSize = 6

	// MaxPageSize caps a caller-supplied page length
	MaxPageSize = 50

	// DefaultCategory is applied when a create request omits the category
	DefaultCategory = "General"

	// dashboardLatestCount is how many recent items the dashboard shows
	dashboardLatestCount = 4
)

// View is a single item hydrated for a reader: the item itself, whether the
// viewer has liked it, and the full comment thread newest first
type View struct {
	*ContentItem
	IsLiked  bool                `json:"isLiked"`
	Comments []*comments.Comment `json:"comments"`
}

// Service defines the business logic interface for content items
type Service interface {
	// CreateContent publishes a new item and broadcasts CONTENT_CREATED
	CreateContent(ctx context.Context, req CreateContentRequest) (*ContentItem, error)

	// GetContent retrieves an item hydrated with the viewer's like state and
	// the comment thread; viewerID may be empty for anonymous readers
	GetContent(ctx context.Context, id int64, viewerID string) (*View, error)

	// ListContent returns one newest-first page
	ListContent(ctx context.Context, page, limit int) (*Page, error)

	// UpdateContent applies a partial patch and broadcasts CONTENT_UPDATED
	UpdateContent(ctx context.Context, id int64, req UpdateContentRequest) (*ContentItem, error)

	// DeleteContent removes an item with its engagement facts and comments,
	// then broadcasts CONTENT_DELETED
	DeleteContent(ctx context.Context, id int64) error

	// GetDashboard aggregates engagement totals and the latest items
	GetDashboard(ctx context.Context) (*Dashboard, error)
}

type contentService struct {
	repo     Repository
	comments CommentLister
	likes    LikeReader
	bus      realtime.Publisher
	logger   *slog.Logger
}

// NewContentService creates a new content service instance
func NewContentService(repo Repository, commentLister CommentLister, likes LikeReader, bus realtime.Publisher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	if bus == nil {
		bus = realtime.NopPublisher{}
	}
	return &contentService{
		repo:     repo,
		comments: commentLister,
		likes:    likes,
		bus:      bus,
		logger:   logger,
	}
}

func (s *contentService) CreateContent(ctx context.Context, req CreateContentRequest) (*ContentItem, error) {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	author := strings.TrimSpace(req.Author)
	if title == "" || body == "" || author == "" {
		return nil, ErrMissingFields
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}

	item := &ContentItem{
		Title:    title,
		Body:     body,
		Author:   author,
		Category: category,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	s.logger.Info("content created", "contentID", item.ID, "author", item.Author)

	s.bus.Publish(realtime.Event{
		Topic:     realtime.TopicContentCreated,
		ContentID: item.ID,
		Payload:   map[string]interface{}{"content": item},
	})

	return item, nil
}

func (s *contentService) GetContent(ctx context.Context, id int64, viewerID string) (*View, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &View{ContentItem: item, Comments: []*comments.Comment{}}

	thread, err := s.comments.ListByContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments for content %d: %w", id, err)
	}
	if thread != nil {
		view.Comments = thread
	}

	if viewerID != "" {
		liked, err := s.likes.HasLiked(ctx, id, viewerID)
		if err != nil {
			// Like state is cosmetic on this path; don't fail the read
			s.logger.Warn("failed to resolve viewer like state",
				"contentID", id, "actorID", viewerID, "error", err)
		} else {
			view.IsLiked = liked
		}
	}

	return view, nil
}

func (s *contentService) ListContent(ctx context.Context, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := (page - 1) * limit

	items, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count content: %w", err)
	}

	if items == nil {
		items = []*ContentItem{}
	}
	return &Page{
		Items:       items,
		Page:        page,
		Total:       total,
		HasNextPage: int64(offset+len(items)) < total,
	}, nil
}

func (s *contentService) UpdateContent(ctx context.Context, id int64, req UpdateContentRequest) (*ContentItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		item.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil && strings.TrimSpace(*req.Body) != "" {
		item.Body = strings.TrimSpace(*req.Body)
	}
	if req.Author != nil && strings.TrimSpace(*req.Author) != "" {
		item.Author = strings.TrimSpace(*req.Author)
	}
	if req.Category != nil && strings.TrimSpace(*req.Category) != "" {
		item.Category = strings.TrimSpace(*req.Category)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update content %d: %w", id, err)
	}

	s.bus.Publish(realtime.Event{
		Topic:     realtime.TopicContentUpdated,
		ContentID: item.ID,
		Payload:   map[string]interface{}{"content": item},
	})

	return item, nil
}

func (s *contentService) DeleteContent(ctx context.Context, id int64) error {
	// Existence check first so callers get ErrContentNotFound rather than a
	// silent no-op delete
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete content %d: %w", id, err)
	}

	s.logger.Info("content deleted", "contentID", id)

	s.bus.Publish(realtime.Event{
		Topic:     realtime.TopicContentDeleted,
		ContentID: id,
	})

	return nil
}

func (s *contentService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}

	latest, err := s.repo.List(ctx, dashboardLatestCount, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest content: %w", err)
	}
	if latest == nil {
		latest = []*ContentItem{}
	}

	return &Dashboard{Stats: *stats, Latest: latest}, nil
}
