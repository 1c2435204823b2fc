// Package gateway owns the websocket edge: it upgrades connections,
// resolves them to player identities, routes client messages to the
// matchmaking, room, and session services, and delivers server events
// back to the right connection.
package gateway

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/protocol"
	"github.com/export9/export9-server/internal/services/identity"
	"github.com/export9/export9-server/internal/services/matchmaker"
	"github.com/export9/export9-server/internal/services/room"
	"github.com/export9/export9-server/internal/services/session"
)

// Gateway terminates websocket connections and routes client messages
// to the game services
type Gateway struct {
	cfg        config.GameConfig
	hub        *Hub
	identities *identity.Service
	matchmaker *matchmaker.Service
	rooms      *room.Registry
	sessions   *session.Manager
	logger     *slog.Logger
	upgrader   websocket.Upgrader
}

// New creates a gateway delivering through the given hub
func New(
	cfg config.GameConfig,
	hub *Hub,
	identities *identity.Service,
	matchmakerSvc *matchmaker.Service,
	rooms *room.Registry,
	sessions *session.Manager,
	logger *slog.Logger,
) *Gateway {
	return &Gateway{
		cfg:        cfg,
		hub:        hub,
		identities: identities,
		matchmaker: matchmakerSvc,
		rooms:      rooms,
		sessions:   sessions,
		logger:     logger.With(slog.String("component", "gateway")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades an HTTP request to a websocket connection and runs
// it until the client disconnects
func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	conn := newConnection(ws, g)
	conn.enqueue(protocol.ServerMessage{
		Type:    protocol.TypeConnected,
		Payload: protocol.Connected{Status: "ok"},
	})

	go conn.writePump()
	conn.readPump()
}

// onConnectionClosed runs the disconnect pipeline for a connection that
// had claimed an identity
func (g *Gateway) onConnectionClosed(conn *connection) {
	playerID := conn.playerID()
	if playerID == "" {
		return
	}
	if !g.hub.unregister(playerID, conn) {
		// The player moved to a newer connection, which displaced this
		// one. Their queue spot, room, and session stay live.
		g.logger.Info("displaced connection closed",
			slog.String("player_id", string(playerID)))
		return
	}

	if err := g.matchmaker.Cancel(playerID); err == nil {
		g.logger.Info("removed disconnected player from queue",
			slog.String("player_id", string(playerID)))
	}
	g.rooms.Cancel(playerID)
	g.sessions.OnDisconnect(playerID)
}
