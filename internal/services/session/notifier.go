package session

import (
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/protocol"
)

// Notifier delivers server messages to a player's live connection.
// Sends to disconnected players are dropped silently.
type Notifier interface {
	Send(playerID model.PlayerID, msg protocol.ServerMessage)
}
