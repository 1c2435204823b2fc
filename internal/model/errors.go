package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Identity errors
	ErrIdentityNotFound = errors.New("identity not found")
	ErrNameRequired     = errors.New("display name is required")

	// Matchmaking errors
	ErrNotWaiting      = errors.New("player is not in the waiting pool")
	ErrCPUNotAvailable = errors.New("CPU opponent not available yet")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room is full")
	ErrRoomExpired  = errors.New("room has expired")

	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrNotInSession     = errors.New("player is not in this session")
	ErrSessionFinished  = errors.New("session is already finished")
	ErrRoundNotActive   = errors.New("no round is active")
	ErrCardNotInHand    = errors.New("card is not in hand or already played")
	ErrReconnectExpired = errors.New("reconnection grace window has expired")
)

// AlreadyInSessionError rejects matchmaking for an identity that still owns
// an active session. It carries the identifiers the client needs to request
// a rejoin instead of spawning a duplicate session.
type AlreadyInSessionError struct {
	SessionID SessionID
	PlayerID  PlayerID
}

func (e *AlreadyInSessionError) Error() string {
	return fmt.Sprintf("player %s is already in active session %s", e.PlayerID, e.SessionID)
}
