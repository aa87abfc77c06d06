package feed

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans booking lifecycle events out to connected admin dashboard
// sessions. Sessions are keyed by user id; a reconnect replaces the old
// socket.
type Hub struct {
	sessions map[int64]*websocket.Conn
	mutex    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		sessions: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.sessions[userID]; exists && old != nil {
		_ = old.Close()
	}

	h.sessions[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.sessions[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.sessions, userID)
	}
}

// Broadcast sends the event to every connected session. Dead sockets are
// dropped on write failure.
func (h *Hub) Broadcast(event interface{}) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.sessions))
	for id, conn := range h.sessions {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) SessionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.sessions)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.sessions {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.sessions, id)
	}
}
