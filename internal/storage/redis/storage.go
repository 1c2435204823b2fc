package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Identity operations

func (s *Storage) SaveIdentity(ctx context.Context, identity *model.PlayerIdentity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	key := identityKey(identity.ID)

	// Apply TTL only for guest identities
	var ttl time.Duration
	if identity.Kind == model.IdentityGuest {
		ttl = s.cfg.GuestIdentityTTL
	}

	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *Storage) GetIdentity(ctx context.Context, id model.PlayerID) (*model.PlayerIdentity, error) {
	data, err := s.client.Get(ctx, identityKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrIdentityNotFound
		}
		return nil, err
	}

	var identity model.PlayerIdentity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *Storage) DeleteIdentity(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, identityKey(id)).Err()
}

// Result dedupe

func (s *Storage) MarkResultApplied(ctx context.Context, resultID string) (bool, error) {
	return s.client.SetNX(ctx, resultMarkerKey(resultID), "1", s.cfg.ResultMarkerTTL).Result()
}

// Match history operations

func (s *Storage) SaveMatchRecord(ctx context.Context, record *model.MatchRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	historyA := matchHistoryKey(record.PlayerA)
	historyB := matchHistoryKey(record.PlayerB)

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, matchKey(record.ID), data, s.cfg.MatchRecordTTL)
	for _, historyKey := range []string{historyA, historyB} {
		pipe.LPush(ctx, historyKey, record.ID)
		if s.cfg.MatchHistoryLimit > 0 {
			pipe.LTrim(ctx, historyKey, 0, int64(s.cfg.MatchHistoryLimit-1))
		}
		pipe.Expire(ctx, historyKey, s.cfg.MatchRecordTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatchHistory(ctx context.Context, playerID model.PlayerID, limit int) ([]*model.MatchRecord, error) {
	end := int64(-1)
	if limit > 0 {
		end = int64(limit - 1)
	}

	ids, err := s.client.LRange(ctx, matchHistoryKey(playerID), 0, end).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.MatchRecord{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = matchKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.MatchRecord, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Record may have expired
		}
		var record model.MatchRecord
		if err := json.Unmarshal([]byte(val.(string)), &record); err != nil {
			continue // Skip invalid data
		}
		records = append(records, &record)
	}

	return records, nil
}

// Rating index operations

func (s *Storage) UpdateRatingIndex(ctx context.Context, id model.PlayerID, rating int) error {
	return s.client.ZAdd(ctx, ratingIndexKey(), redis.Z{
		Score:  float64(rating),
		Member: string(id),
	}).Err()
}

func (s *Storage) RemoveFromRatingIndex(ctx context.Context, id model.PlayerID) error {
	return s.client.ZRem(ctx, ratingIndexKey(), string(id)).Err()
}

func (s *Storage) TopRatings(ctx context.Context, limit int) ([]storage.RatingEntry, error) {
	end := int64(-1)
	if limit > 0 {
		end = int64(limit - 1)
	}

	members, err := s.client.ZRevRangeWithScores(ctx, ratingIndexKey(), 0, end).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]storage.RatingEntry, 0, len(members))
	for _, m := range members {
		id, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, storage.RatingEntry{
			PlayerID: model.PlayerID(id),
			Rating:   int(m.Score),
		})
	}
	return entries, nil
}
