package gateway

import (
	"log/slog"
	"sync"

	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/protocol"
	"github.com/export9/export9-server/internal/services/session"
)

// Hub maps player ids to live connections. It is the delivery side of
// the gateway: game services send through it without knowing about
// websockets, so it can be constructed before the services it serves.
type Hub struct {
	logger *slog.Logger

	mu    sync.RWMutex
	conns map[model.PlayerID]*connection
}

var _ session.Notifier = (*Hub)(nil)

// NewHub creates an empty connection hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger.With(slog.String("component", "gateway-hub")),
		conns:  make(map[model.PlayerID]*connection),
	}
}

// Send delivers a server message to the player's live connection.
// Messages to players without a connection are dropped.
func (h *Hub) Send(playerID model.PlayerID, msg protocol.ServerMessage) {
	h.mu.RLock()
	conn := h.conns[playerID]
	h.mu.RUnlock()
	if conn == nil {
		return
	}
	conn.enqueue(msg)
}

// register binds a connection to a player id. A newer connection for
// the same player displaces the old one.
func (h *Hub) register(playerID model.PlayerID, conn *connection) {
	h.mu.Lock()
	prev := h.conns[playerID]
	h.conns[playerID] = conn
	h.mu.Unlock()

	if prev != nil && prev != conn {
		prev.close()
	}
}

// unregister removes the binding and reports whether it did. It reports
// false when the player has already been taken over by a newer
// connection, which still owns the binding.
func (h *Hub) unregister(playerID model.PlayerID, conn *connection) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[playerID] != conn {
		return false
	}
	delete(h.conns, playerID)
	return true
}
