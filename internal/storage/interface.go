package storage

import (
	"context"

	"github.com/export9/export9-server/internal/model"
)

// RatingEntry is a single row of the rating index
type RatingEntry struct {
	PlayerID model.PlayerID
	Rating   int
}

// Storage defines the interface for data persistence
type Storage interface {
	// Identity operations
	SaveIdentity(ctx context.Context, identity *model.PlayerIdentity) error
	GetIdentity(ctx context.Context, id model.PlayerID) (*model.PlayerIdentity, error)
	DeleteIdentity(ctx context.Context, id model.PlayerID) error

	// MarkResultApplied records that a match result has been applied to
	// ratings. It returns true only for the first call with a given id,
	// so a result delivered twice adjusts ratings exactly once.
	MarkResultApplied(ctx context.Context, resultID string) (bool, error)

	// Match history operations
	SaveMatchRecord(ctx context.Context, record *model.MatchRecord) error
	GetMatchHistory(ctx context.Context, playerID model.PlayerID, limit int) ([]*model.MatchRecord, error)

	// Rating index operations
	UpdateRatingIndex(ctx context.Context, id model.PlayerID, rating int) error
	RemoveFromRatingIndex(ctx context.Context, id model.PlayerID) error
	TopRatings(ctx context.Context, limit int) ([]RatingEntry, error)
}
