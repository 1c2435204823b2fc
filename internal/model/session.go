package model

import "time"

// SessionID uniquely identifies a match session
type SessionID string

// SessionState is the current phase of a session's lifecycle
type SessionState string

const (
	SessionDealing       SessionState = "dealing"
	SessionRoundActive   SessionState = "round_active"
	SessionRoundResolved SessionState = "round_resolved"
	SessionPaused        SessionState = "paused"
	SessionCompleted     SessionState = "completed"
	SessionForfeited     SessionState = "forfeited"
)

// Finished reports whether the state is terminal
func (s SessionState) Finished() bool {
	return s == SessionCompleted || s == SessionForfeited
}

// ForfeitReason explains why a session ended in forfeit
type ForfeitReason string

const (
	ForfeitOpponentDisconnected ForfeitReason = "opponent_disconnected"
	ForfeitOpponentQuit         ForfeitReason = "opponent_quit"
)

// RoundOutcome identifies the winner of a resolved round
type RoundOutcome string

const (
	RoundWinnerA RoundOutcome = "a"
	RoundWinnerB RoundOutcome = "b"
	RoundTie     RoundOutcome = "tie"
)

// RoundResult is the scoring engine's verdict for one round
type RoundResult struct {
	Outcome RoundOutcome
	ValueA  float64
	ValueB  float64
}

// Round tracks one round's submissions within a session. Submissions
// may be replaced until the round resolves.
type Round struct {
	Number      int
	Product     Product
	Submissions map[PlayerID]Card
	Deadline    time.Time
	Resolved    bool
	Result      RoundResult
}

// MatchRecord archives a finished session's result
type MatchRecord struct {
	ID             string        `json:"id"`
	SessionID      SessionID     `json:"session_id"`
	PlayerA        PlayerID      `json:"player_a"`
	PlayerB        PlayerID      `json:"player_b"`
	WinnerID       PlayerID      `json:"winner_id,omitempty"` // empty on draw
	ScoreA         int           `json:"score_a"`
	ScoreB         int           `json:"score_b"`
	RatingABefore  int           `json:"rating_a_before"`
	RatingBBefore  int           `json:"rating_b_before"`
	RatingAAfter   int           `json:"rating_a_after"`
	RatingBAfter   int           `json:"rating_b_after"`
	ForfeitReason  ForfeitReason `json:"forfeit_reason,omitempty"`
	Duration       time.Duration `json:"duration"`
	CompletedAt    time.Time     `json:"completed_at"`
}
