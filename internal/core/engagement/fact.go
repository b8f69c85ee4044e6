package engagement

import "time"

// Kind distinguishes the two deduplicated engagement actions
type Kind string

const (
	KindView Kind = "view"
	KindLike Kind = "like"
)

// Fact is one durable engagement record: this actor performed this action on
// this content item. At most one fact exists per (content, actor, kind); the
// uniqueness lives in the storage layer as a constraint, not an application
// check
// A view fact is immutable once created; a like fact is deleted on toggle-off
type Fact struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ActorID   string    `json:"actorId" db:"actor_id"`
	Kind      Kind      `json:"kind" db:"kind"`
	ID        int64     `json:"id" db:"id"`
	ContentID int64     `json:"contentId" db:"content_id"`
}

// ViewResult is the outcome of recording a view
// A duplicate view is success, not an error; AlreadyRecorded tells the two
// cases apart without overloading the count
type ViewResult struct {
	ViewsCount      int64 `json:"viewsCount"`
	AlreadyRecorded bool  `json:"alreadyRecorded"`
}

// LikeResult is the outcome of toggling a like
type LikeResult struct {
	LikesCount int64 `json:"likesCount"`
	Liked      bool  `json:"liked"`
}
