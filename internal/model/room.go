package model

import "time"

// RoomCode is a short, case-insensitive code for a private room
type RoomCode string

// RoomCapacity is the number of players a private room pairs
const RoomCapacity = 2

// PrivateRoom holds a friend-invite slot until the second player joins
// or the room expires. A consumed room cannot be joined again.
type PrivateRoom struct {
	Code      RoomCode  `json:"code"`
	CreatorID PlayerID  `json:"creator_id"`
	Players   int       `json:"players"`
	Consumed  bool      `json:"consumed"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the room is past its expiry at the given time
func (r *PrivateRoom) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
