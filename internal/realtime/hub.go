package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Hub is the fan-out bus and session registry
// Every connected session receives every published event; filtering by
// relevance (e.g. "is this contentId on my screen") is the client's job.
// This avoids a topic-routing table at the cost of wasted delivery to
// uninterested sessions, which is acceptable at small payload sizes and
// modest session counts.
type Hub struct {
	mu       sync.RWMutex
	sessions map[*Session]struct{}
	logger   *slog.Logger
}

// NewHub creates an empty hub
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		sessions: make(map[*Session]struct{}),
		logger:   logger,
	}
}

// Register adds a live session to the broadcast set
func (h *Hub) Register(s *Session) {
	h.mu.Lock()
	h.sessions[s] = struct{}{}
	h.mu.Unlock()

	h.logger.Debug("session registered", "sessionID", s.ID())
}

// Unregister removes a session from the broadcast set
// Idempotent: unregistering an unknown or already-removed session is a no-op,
// so the read pump and the write pump can both tear the session down
func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	delete(h.sessions, s)
	h.mu.Unlock()

	h.logger.Debug("session unregistered", "sessionID", s.ID())
}

// SessionCount returns the number of currently registered sessions
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Publish broadcasts an event to all registered sessions
// Fire-and-forget: the event is marshaled once and handed to each session's
// bounded send queue without blocking. A session whose queue is full drops
// the event (it will resynchronize via a full read); delivery to any one
// session preserves publish order.
func (h *Hub) Publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal delta event",
			"topic", string(event.Topic),
			"contentID", event.ContentID,
			"error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for _, s := range targets {
		if !s.enqueue(data) {
			h.logger.Warn("dropped delta event for slow session",
				"sessionID", s.ID(),
				"topic", string(event.Topic))
		}
	}
}

// Close tears down every registered session
// Called on server shutdown after the HTTP listener stops accepting
func (h *Hub) Close() {
	h.mu.Lock()
	targets := make([]*Session, 0, len(h.sessions))
	for s := range h.sessions {
		targets = append(targets, s)
	}
	h.sessions = make(map[*Session]struct{})
	h.mu.Unlock()

	for _, s := range targets {
		s.Close()
	}
}
