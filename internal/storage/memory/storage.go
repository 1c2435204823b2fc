package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	identities     map[model.PlayerID]*model.PlayerIdentity
	appliedResults map[string]bool
	matches        map[string]*model.MatchRecord
	matchIndex     map[model.PlayerID][]string
	ratingIndex    map[model.PlayerID]int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		identities:     make(map[model.PlayerID]*model.PlayerIdentity),
		appliedResults: make(map[string]bool),
		matches:        make(map[string]*model.MatchRecord),
		matchIndex:     make(map[model.PlayerID][]string),
		ratingIndex:    make(map[model.PlayerID]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Identity operations

func (s *Storage) SaveIdentity(ctx context.Context, identity *model.PlayerIdentity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[identity.ID] = identity
	return nil
}

func (s *Storage) GetIdentity(ctx context.Context, id model.PlayerID) (*model.PlayerIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	identity, ok := s.identities[id]
	if !ok {
		return nil, model.ErrIdentityNotFound
	}
	return identity, nil
}

func (s *Storage) DeleteIdentity(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.identities, id)
	return nil
}

// Result dedupe

func (s *Storage) MarkResultApplied(ctx context.Context, resultID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appliedResults[resultID] {
		return false, nil
	}
	s.appliedResults[resultID] = true
	return true, nil
}

// Match history operations

func (s *Storage) SaveMatchRecord(ctx context.Context, record *model.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[record.ID]; !ok {
		// Most recent first
		s.matchIndex[record.PlayerA] = append([]string{record.ID}, s.matchIndex[record.PlayerA]...)
		s.matchIndex[record.PlayerB] = append([]string{record.ID}, s.matchIndex[record.PlayerB]...)
	}
	s.matches[record.ID] = record
	return nil
}

func (s *Storage) GetMatchHistory(ctx context.Context, playerID model.PlayerID, limit int) ([]*model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.matchIndex[playerID]
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	records := make([]*model.MatchRecord, 0, len(ids))
	for _, id := range ids {
		if record, ok := s.matches[id]; ok {
			records = append(records, record)
		}
	}
	return records, nil
}

// Rating index operations

func (s *Storage) UpdateRatingIndex(ctx context.Context, id model.PlayerID, rating int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratingIndex[id] = rating
	return nil
}

func (s *Storage) RemoveFromRatingIndex(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ratingIndex, id)
	return nil
}

func (s *Storage) TopRatings(ctx context.Context, limit int) ([]storage.RatingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]storage.RatingEntry, 0, len(s.ratingIndex))
	for id, rating := range s.ratingIndex {
		entries = append(entries, storage.RatingEntry{PlayerID: id, Rating: rating})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Rating != entries[j].Rating {
			return entries[i].Rating > entries[j].Rating
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
