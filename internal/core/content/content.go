package content

import (
	"time"
)

// ContentItem represents a published piece of content with its denormalized
// engagement counters
// The counter columns are derived values: they always equal the number of
// corresponding ledger/comment rows and are written only by the counter
// reconciler, never by content authoring paths
type ContentItem struct {
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
	Title         string    `json:"title" db:"title"`
	Body          string    `json:"body" db:"body"`
	Author        string    `json:"author" db:"author"`
	Category      string    `json:"category" db:"category"`
	ID            int64     `json:"id" db:"id"`
	ViewsCount    int64     `json:"viewsCount" db:"views_count"`
	LikesCount    int64     `json:"likesCount" db:"likes_count"`
	CommentsCount int64     `json:"commentsCount" db:"comments_count"`
}

// CreateContentRequest contains the fields for publishing a new item
type CreateContentRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// UpdateContentRequest is a partial patch; nil fields are left unchanged
type UpdateContentRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	Author   *string `json:"author"`
	Category *string `json:"category"`
}

// Page is one page of the newest-first content listing
type Page struct {
	Items       []*ContentItem `json:"items"`
	Page        int            `json:"page"`
	Total       int64          `json:"total"`
	HasNextPage bool           `json:"hasNextPage"`
}

// Stats aggregates engagement across all content for the dashboard
type Stats struct {
	TotalContents int64 `json:"totalContents"`
	TotalViews    int64 `json:"totalViews"`
	TotalLikes    int64 `json:"totalLikes"`
	TotalComments int64 `json:"totalComments"`
}

// Dashboard is the management-side overview payload
type Dashboard struct {
	Stats  Stats          `json:"stats"`
	Latest []*ContentItem `json:"latest"`
}
