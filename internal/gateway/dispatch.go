package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/protocol"
)

// dispatch routes one decoded client message to its handler
func (g *Gateway) dispatch(c *connection, msg protocol.ClientMessage) {
	ctx := context.Background()

	switch msg.Type {
	case protocol.TypeJoinGame:
		g.handleJoinGame(ctx, c, msg.Payload)
	case protocol.TypeCreateRoom:
		g.handleCreateRoom(ctx, c, msg.Payload)
	case protocol.TypeRejoinGame:
		g.handleRejoinGame(ctx, c, msg.Payload)
	case protocol.TypePlayCard:
		g.handlePlayCard(ctx, c, msg.Payload)
	case protocol.TypePlayCPU:
		g.handlePlayCPU(ctx, c)
	case protocol.TypeQuitGame:
		g.handleQuitGame(c)
	case protocol.TypeHeartbeat:
		g.handleHeartbeat(c, msg.Payload)
	default:
		c.sendError(protocol.CodeValidation, fmt.Sprintf("unknown message type %q", msg.Type))
	}
}

// handleJoinGame binds an identity to the connection and enters either
// the public pool or a private room
func (g *Gateway) handleJoinGame(ctx context.Context, c *connection, payload json.RawMessage) {
	var req protocol.JoinGame
	if err := json.Unmarshal(payload, &req); err != nil {
		c.sendError(protocol.CodeValidation, "malformed join_game payload")
		return
	}

	playerIdentity, err := g.identities.Resolve(ctx, req.PlayerID, req.Name, req.Registered)
	if err != nil {
		g.sendServiceError(c, err)
		return
	}
	c.bind(playerIdentity)
	c.enqueue(protocol.ServerMessage{
		Type: protocol.TypePlayerCreated,
		Payload: protocol.PlayerCreated{
			PlayerID: playerIdentity.ID,
			Name:     playerIdentity.DisplayName,
			Rating:   playerIdentity.Rating,
			Status:   "ready",
		},
	})

	if req.RoomCode != "" {
		// A queue spot cannot be held while sitting down in a room
		g.matchmaker.Cancel(playerIdentity.ID)
		if _, err := g.rooms.Join(ctx, req.RoomCode, playerIdentity); err != nil {
			g.sendServiceError(c, err)
		}
		return
	}

	g.rooms.Cancel(playerIdentity.ID)
	if err := g.matchmaker.Enqueue(ctx, playerIdentity); err != nil {
		g.sendServiceError(c, err)
	}
}

// handleCreateRoom binds an identity and opens a private room
func (g *Gateway) handleCreateRoom(ctx context.Context, c *connection, payload json.RawMessage) {
	var req protocol.CreateRoom
	if err := json.Unmarshal(payload, &req); err != nil {
		c.sendError(protocol.CodeValidation, "malformed create_room payload")
		return
	}

	playerIdentity, err := g.identities.Resolve(ctx, req.PlayerID, req.Name, false)
	if err != nil {
		g.sendServiceError(c, err)
		return
	}
	c.bind(playerIdentity)
	c.enqueue(protocol.ServerMessage{
		Type: protocol.TypePlayerCreated,
		Payload: protocol.PlayerCreated{
			PlayerID: playerIdentity.ID,
			Name:     playerIdentity.DisplayName,
			Rating:   playerIdentity.Rating,
			Status:   "ready",
		},
	})

	g.matchmaker.Cancel(playerIdentity.ID)
	createdRoom, err := g.rooms.Create(ctx, playerIdentity)
	if err != nil {
		g.sendServiceError(c, err)
		return
	}
	c.enqueue(protocol.ServerMessage{
		Type: protocol.TypeRoomCreated,
		Payload: protocol.RoomCreated{
			Code:      createdRoom.Code,
			ExpiresAt: createdRoom.ExpiresAt,
		},
	})
}

// handleRejoinGame reclaims a paused session slot after a disconnect
func (g *Gateway) handleRejoinGame(ctx context.Context, c *connection, payload json.RawMessage) {
	var req protocol.RejoinGame
	if err := json.Unmarshal(payload, &req); err != nil {
		c.sendError(protocol.CodeValidation, "malformed rejoin_game payload")
		return
	}

	playerIdentity, err := g.identities.Get(ctx, req.PlayerID)
	if err != nil {
		g.sendServiceError(c, err)
		return
	}
	c.bind(playerIdentity)

	if err := g.sessions.Reconnect(ctx, req.SessionID, req.PlayerID); err != nil {
		g.sendServiceError(c, err)
	}
}

// handlePlayCard submits a card to the player's live session
func (g *Gateway) handlePlayCard(ctx context.Context, c *connection, payload json.RawMessage) {
	playerIdentity := c.getIdentity()
	if playerIdentity == nil {
		c.sendError(protocol.CodeValidation, "join a game before playing")
		return
	}

	var req protocol.PlayCard
	if err := json.Unmarshal(payload, &req); err != nil {
		c.sendError(protocol.CodeValidation, "malformed play_card payload")
		return
	}

	engine, ok := g.sessions.ForPlayer(playerIdentity.ID)
	if !ok {
		g.sendServiceError(c, model.ErrSessionNotFound)
		return
	}
	if err := engine.HandleSubmission(ctx, playerIdentity.ID, req.CountryCode); err != nil {
		g.sendServiceError(c, err)
	}
}

// handlePlayCPU asks for a CPU opponent after waiting in the pool
func (g *Gateway) handlePlayCPU(ctx context.Context, c *connection) {
	playerIdentity := c.getIdentity()
	if playerIdentity == nil {
		c.sendError(protocol.CodeValidation, "join a game before requesting a cpu opponent")
		return
	}
	if err := g.matchmaker.RequestCPU(ctx, playerIdentity.ID); err != nil {
		g.sendServiceError(c, err)
	}
}

// handleQuitGame leaves whatever the player is part of: a live session
// forfeits, a queue spot or open room is released
func (g *Gateway) handleQuitGame(c *connection) {
	playerIdentity := c.getIdentity()
	if playerIdentity == nil {
		c.sendError(protocol.CodeValidation, "not in a game")
		return
	}

	if engine, ok := g.sessions.ForPlayer(playerIdentity.ID); ok {
		if err := engine.HandleQuit(playerIdentity.ID); err != nil {
			g.sendServiceError(c, err)
		}
		return
	}
	g.matchmaker.Cancel(playerIdentity.ID)
	g.rooms.Cancel(playerIdentity.ID)
}

// handleHeartbeat echoes the client's timestamp
func (g *Gateway) handleHeartbeat(c *connection, payload json.RawMessage) {
	var req protocol.Heartbeat
	if err := json.Unmarshal(payload, &req); err != nil {
		c.sendError(protocol.CodeValidation, "malformed heartbeat payload")
		return
	}
	c.enqueue(protocol.ServerMessage{
		Type:    protocol.TypePong,
		Payload: protocol.Pong{Timestamp: req.Timestamp},
	})
}

// sendServiceError translates service errors into wire error codes
func (g *Gateway) sendServiceError(c *connection, err error) {
	var conflict *model.AlreadyInSessionError
	if errors.As(err, &conflict) {
		c.enqueue(protocol.ServerMessage{
			Type: protocol.TypeError,
			Payload: protocol.Error{
				Code:      protocol.CodeConflict,
				Message:   "already in an active session",
				SessionID: conflict.SessionID,
				PlayerID:  conflict.PlayerID,
			},
		})
		return
	}

	switch {
	case errors.Is(err, model.ErrRoomNotFound),
		errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrIdentityNotFound):
		c.sendError(protocol.CodeNotFound, err.Error())
	case errors.Is(err, model.ErrRoomFull),
		errors.Is(err, model.ErrSessionFinished),
		errors.Is(err, model.ErrReconnectExpired):
		c.sendError(protocol.CodeConflict, err.Error())
	case errors.Is(err, model.ErrRoomExpired),
		errors.Is(err, model.ErrCardNotInHand),
		errors.Is(err, model.ErrRoundNotActive),
		errors.Is(err, model.ErrNotInSession),
		errors.Is(err, model.ErrNotWaiting),
		errors.Is(err, model.ErrCPUNotAvailable),
		errors.Is(err, model.ErrNameRequired):
		c.sendError(protocol.CodeValidation, err.Error())
	default:
		g.logger.Error("request failed",
			slog.String("player_id", string(c.playerID())),
			slog.Any("error", err))
		c.sendError(protocol.CodeInternal, "internal error")
	}
}
