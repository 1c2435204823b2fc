package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// IdentityKind distinguishes throwaway guest identities from registered accounts
type IdentityKind string

const (
	IdentityGuest      IdentityKind = "guest"
	IdentityRegistered IdentityKind = "registered"
)

// Persistence describes where an identity's rating and history live
type Persistence string

const (
	// PersistenceLocal identities keep rating/history client-side only
	PersistenceLocal Persistence = "local"
	// PersistenceRemote identities are persisted through the server store
	PersistenceRemote Persistence = "remote"
)

// PlayerIdentity represents a game participant. Rating and the win/loss
// tallies are mutated only by the rating service.
type PlayerIdentity struct {
	ID          PlayerID     `json:"id"`
	DisplayName string       `json:"display_name"`
	Kind        IdentityKind `json:"kind"`
	Rating      int          `json:"rating"`
	GamesPlayed int          `json:"games_played"`
	Wins        int          `json:"wins"`
	Losses      int          `json:"losses"`
	Draws       int          `json:"draws"`
	IsCPU       bool         `json:"is_cpu,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	LastPlayed  time.Time    `json:"last_played,omitzero"`
}

// Persistence returns where this identity's rating updates should be stored
func (p *PlayerIdentity) Persistence() Persistence {
	if p.Kind == IdentityRegistered {
		return PersistenceRemote
	}
	return PersistenceLocal
}
