package realtime

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// writeWait is the deadline for a single websocket write
	writeWait = 10 * time.Second

	// pongWait is how long we keep a connection alive without a pong
	pingPeriod = 30 * time.Second
	pongWait   = pingPeriod * 2

	// sendQueueSize bounds the per-session outbound buffer
	// A session that falls more than this many events behind starts
	// losing events and must refetch state
	sendQueueSize = 32
)

// Session is one live websocket subscriber of the delta stream
type Session struct {
	id        string
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	logger    *slog.Logger
	closeOnce sync.Once

	// ActorID is the authenticated viewer, empty for anonymous readers
	ActorID string
}

// NewSession wraps an upgraded websocket connection
func NewSession(hub *Hub, conn *websocket.Conn, actorID string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		id:      uuid.NewString(),
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, sendQueueSize),
		done:    make(chan struct{}),
		logger:  logger,
		ActorID: actorID,
	}
}

// ID returns the server-assigned session identifier
func (s *Session) ID() string {
	return s.id
}

// enqueue hands an encoded event to the session's write pump without blocking
// Returns false if the queue is full or the session is closed
// The send channel is never closed, so a publisher racing a disconnect can
// safely attempt the handoff
func (s *Session) enqueue(data []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.send <- data:
		return true
	default:
		return false
	}
}

// Close unregisters the session and closes the underlying connection
// Safe to call from multiple goroutines; only the first call acts
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.hub.Unregister(s)
		close(s.done)
		if err := s.conn.Close(); err != nil {
			s.logger.Debug("session close", "sessionID", s.id, "error", err)
		}
	})
}

// Run registers the session and starts its read and write pumps
// Blocks until the connection drops, then tears the session down
func (s *Session) Run() {
	s.hub.Register(s)

	go s.writePump()
	s.readPump()
}

// readPump drains inbound frames so control messages get processed
// Subscribers are receive-only; any payload the client sends is discarded
func (s *Session) readPump() {
	defer s.Close()

	s.conn.SetReadLimit(512)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("session read error", "sessionID", s.id, "error", err)
			}
			return
		}
	}
}

// writePump flushes queued events to the connection and keeps it alive
// with periodic pings
func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
	}()

	for {
		select {
		case <-s.done:
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return

		case data := <-s.send:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
