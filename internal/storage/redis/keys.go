package redis

import (
	"fmt"

	"github.com/export9/export9-server/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "export9"

// Key generation functions for each entity type

// identityKey returns the Redis key for a PlayerIdentity
func identityKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:identity:%s", keyPrefix, id)
}

// resultMarkerKey returns the Redis key marking a match result as applied
func resultMarkerKey(resultID string) string {
	return fmt.Sprintf("%s:result_applied:%s", keyPrefix, resultID)
}

// matchKey returns the Redis key for a MatchRecord
func matchKey(id string) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchHistoryKey returns the Redis key for the LIST of a player's matches
func matchHistoryKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:matches_for_player:%s", keyPrefix, playerID)
}

// ratingIndexKey returns the Redis key for the rating ZSET
func ratingIndexKey() string {
	return fmt.Sprintf("%s:idx:rating", keyPrefix)
}
