package comments

import "time"

// Comment is one entry in a content item's thread
// Comments are not deduplicated by actor and are hard-deleted; the thread is
// ordered newest first with the server-assigned id breaking timestamp ties
type Comment struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ActorID    string    `json:"actorId" db:"actor_id"`
	AuthorName string    `json:"authorName" db:"author_name"`
	Text       string    `json:"text" db:"text"`
	ID         int64     `json:"id" db:"id"`
	ContentID  int64     `json:"contentId" db:"content_id"`
}

// AddCommentResult carries the created row and the thread's new size
type AddCommentResult struct {
	Comment       *Comment `json:"comment"`
	CommentsCount int64    `json:"commentsCount"`
}

// RemoveCommentResult carries the thread's size after a deletion
type RemoveCommentResult struct {
	CommentsCount int64 `json:"commentsCount"`
}
