// Package protocol defines the JSON message envelope and payloads
// exchanged over the websocket.
package protocol

import (
	"encoding/json"
	"time"

	"github.com/export9/export9-server/internal/model"
)

// ClientMessage is the envelope for messages from the client. The
// payload is decoded once the type is known.
type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ServerMessage is the envelope for messages to the client
type ServerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client message types
const (
	TypeJoinGame   = "join_game"
	TypeCreateRoom = "create_room"
	TypeRejoinGame = "rejoin_game"
	TypePlayCard   = "play_card"
	TypePlayCPU    = "play_cpu"
	TypeQuitGame   = "quit_game"
	TypeHeartbeat  = "heartbeat"
)

// Server message types
const (
	TypeConnected            = "connected"
	TypePlayerCreated        = "player_created"
	TypeRoomCreated          = "room_created"
	TypeGameFound            = "game_found"
	TypeRoundStarted         = "round_started"
	TypeCardPlayed           = "card_played"
	TypeRoundCompleted       = "round_completed"
	TypeGameEnded            = "game_ended"
	TypeGameForfeited        = "game_forfeited"
	TypeOpponentDisconnected = "opponent_disconnected"
	TypeOpponentReconnected  = "opponent_reconnected"
	TypeWaiting              = "waiting"
	TypePong                 = "pong"
	TypeError                = "error"
)

// Error codes carried by the error payload
const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeConflict   = "conflict"
	CodeInternal   = "internal"
)

// Client payloads

// JoinGame enters the public matchmaking pool, or a private room when
// RoomCode is set. PlayerID resumes an existing identity; otherwise a
// guest identity is created with a generated name when Name is empty.
type JoinGame struct {
	Name       string         `json:"name"`
	PlayerID   model.PlayerID `json:"player_id,omitempty"`
	Registered bool           `json:"registered,omitempty"`
	RoomCode   model.RoomCode `json:"room_code,omitempty"`
}

// CreateRoom opens a private room and returns its join code
type CreateRoom struct {
	Name     string         `json:"name"`
	PlayerID model.PlayerID `json:"player_id,omitempty"`
}

// RejoinGame claims a paused session slot after a disconnect
type RejoinGame struct {
	SessionID model.SessionID `json:"session_id"`
	PlayerID  model.PlayerID  `json:"player_id"`
}

// PlayCard submits (or resubmits) a card for the active round
type PlayCard struct {
	CountryCode string `json:"country_code"`
}

// Heartbeat is an application-level liveness probe
type Heartbeat struct {
	Timestamp int64 `json:"timestamp"`
}

// Server payloads

// Connected acknowledges a fresh websocket connection
type Connected struct {
	Status string `json:"status"`
}

// PlayerCreated reports the identity assigned to the connection
type PlayerCreated struct {
	PlayerID model.PlayerID `json:"player_id"`
	Name     string         `json:"name"`
	Rating   int            `json:"rating"`
	Status   string         `json:"status"`
}

// RoomCreated reports a private room's join code
type RoomCreated struct {
	Code      model.RoomCode `json:"code"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// PlayerInfo is the public view of a session participant
type PlayerInfo struct {
	ID    model.PlayerID `json:"id"`
	Name  string         `json:"name"`
	IsCPU bool           `json:"is_cpu,omitempty"`
}

// CardInfo is a card as shown to its owner
type CardInfo struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

// GameFound announces a paired session and the receiving player's hand
type GameFound struct {
	SessionID model.SessionID `json:"session_id"`
	Players   []PlayerInfo    `json:"players"`
	YourCards []CardInfo      `json:"your_cards"`
}

// ProductInfo is the product a round is played against
type ProductInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// RoundStarted opens a round for submissions
type RoundStarted struct {
	RoundNumber int          `json:"round_number"`
	TotalRounds int          `json:"total_rounds"`
	Product     ProductInfo  `json:"product"`
	Players     []PlayerInfo `json:"players"`
	YourCards   []CardInfo   `json:"your_cards"`
	Deadline    time.Time    `json:"deadline"`
}

// CardPlayed tells both players a submission landed. The card itself is
// not revealed until the round resolves.
type CardPlayed struct {
	PlayerID   model.PlayerID `json:"player_id"`
	PlayerName string         `json:"player_name"`
}

// PlayedCard is a revealed submission with its export value
type PlayedCard struct {
	CountryCode string  `json:"country_code"`
	CountryName string  `json:"country_name"`
	ExportValue float64 `json:"export_value"`
}

// RoundPlayerResult is one player's line in a round result
type RoundPlayerResult struct {
	ID            model.PlayerID `json:"id"`
	Name          string         `json:"name"`
	Score         int            `json:"score"`
	IsRoundWinner bool           `json:"is_round_winner"`
	CardPlayed    *PlayedCard    `json:"card_played"`
}

// RoundCompleted reveals both cards and the round outcome. WinnerID is
// "tie" when both played equally valuable cards.
type RoundCompleted struct {
	RoundNumber int                 `json:"round_number"`
	WinnerID    string              `json:"winner_id"`
	IsTie       bool                `json:"is_tie"`
	Players     []RoundPlayerResult `json:"players"`
}

// FinalScore is one player's total at the end of a session
type FinalScore struct {
	ID    model.PlayerID `json:"id"`
	Name  string         `json:"name"`
	Score int            `json:"score"`
}

// RatingChange reports one player's Elo movement for the match
type RatingChange struct {
	PlayerID model.PlayerID `json:"player_id"`
	Before   int            `json:"before"`
	After    int            `json:"after"`
}

// GameEnded closes a completed session. WinnerID is empty on a draw.
type GameEnded struct {
	WinnerID      model.PlayerID `json:"winner_id,omitempty"`
	WinnerName    string         `json:"winner_name,omitempty"`
	FinalScores   []FinalScore   `json:"final_scores"`
	RatingChanges []RatingChange `json:"rating_changes,omitempty"`
}

// GameForfeited closes a session won by forfeit
type GameForfeited struct {
	Reason           model.ForfeitReason `json:"reason"`
	ForfeitingPlayer model.PlayerID      `json:"forfeiting_player"`
	WinnerID         model.PlayerID      `json:"winner_id"`
	FinalScores      []FinalScore        `json:"final_scores"`
	RatingChanges    []RatingChange      `json:"rating_changes,omitempty"`
}

// OpponentDisconnected pauses the session pending reconnection
type OpponentDisconnected struct {
	PlayerID       model.PlayerID `json:"player_id"`
	PauseExpiresAt time.Time      `json:"pause_expires_at"`
}

// OpponentReconnected resumes a paused session
type OpponentReconnected struct {
	PlayerID model.PlayerID `json:"player_id"`
}

// Waiting is the periodic matchmaking status signal
type Waiting struct {
	ElapsedSeconds int  `json:"elapsed_seconds"`
	CPUAvailable   bool `json:"cpu_available"`
}

// Pong answers a heartbeat with the client's timestamp echoed back
type Pong struct {
	Timestamp int64 `json:"timestamp"`
}

// Error reports a failed operation to the sender
type Error struct {
	Code      string          `json:"code"`
	Message   string          `json:"message"`
	SessionID model.SessionID `json:"session_id,omitempty"`
	PlayerID  model.PlayerID  `json:"player_id,omitempty"`
}
