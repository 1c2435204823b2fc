package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// GuestIdentityTTL expires guest identities that stop playing.
	// Registered identities are kept indefinitely.
	GuestIdentityTTL time.Duration

	// MatchRecordTTL expires archived match records
	MatchRecordTTL time.Duration

	// ResultMarkerTTL expires the markers used to deduplicate rating
	// updates. It only needs to outlive redelivery of a finished match.
	ResultMarkerTTL time.Duration

	// MatchHistoryLimit caps the per-player match history list
	MatchHistoryLimit int
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:               "redis://localhost:6379",
		PoolSize:          10,
		MinIdleConns:      2,
		GuestIdentityTTL:  7 * 24 * time.Hour,
		MatchRecordTTL:    30 * 24 * time.Hour,
		ResultMarkerTTL:   24 * time.Hour,
		MatchHistoryLimit: 50,
	}
}
