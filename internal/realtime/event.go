package realtime

// Topic identifies the kind of state change a delta event describes
type Topic string

const (
	TopicLikeChanged    Topic = "LIKE_CHANGED"
	TopicViewChanged    Topic = "VIEW_CHANGED"
	TopicCommentAdded   Topic = "COMMENT_ADDED"
	TopicCommentDeleted Topic = "COMMENT_DELETED"
	TopicContentCreated Topic = "CONTENT_CREATED"
	TopicContentUpdated Topic = "CONTENT_UPDATED"
	TopicContentDeleted Topic = "CONTENT_DELETED"
)

// Event is a transient delta message broadcast to live sessions
// Events are never persisted; a session that misses one must catch up
// with a full read on reconnect
type Event struct {
	Topic     Topic       `json:"topic"`
	ContentID int64       `json:"contentId"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Publisher is the narrow interface services use to emit delta events
// Publish must never block the caller on slow or dead subscribers
type Publisher interface {
	Publish(event Event)
}

// NopPublisher discards all events
// Used in tests and tooling that doesn't run a hub
type NopPublisher struct{}

func (NopPublisher) Publish(Event) {}
