package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/export9/export9-server/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Identity tests

func (s *StorageSuite) TestSaveAndGetIdentity() {
	identity := &model.PlayerIdentity{
		ID:          "player-1",
		DisplayName: "SwiftTrader",
		Kind:        model.IdentityGuest,
		Rating:      1200,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SaveIdentity(s.ctx, identity)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetIdentity(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(identity.ID, retrieved.ID)
	s.Equal(identity.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetIdentityNotFound() {
	_, err := s.storage.GetIdentity(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

func (s *StorageSuite) TestDeleteIdentity() {
	identity := &model.PlayerIdentity{ID: "player-1", DisplayName: "SwiftTrader"}
	_ = s.storage.SaveIdentity(s.ctx, identity)

	err := s.storage.DeleteIdentity(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetIdentity(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrIdentityNotFound)
}

// Result dedupe tests

func (s *StorageSuite) TestMarkResultApplied() {
	first, err := s.storage.MarkResultApplied(s.ctx, "result-1")
	s.Require().NoError(err)
	s.True(first)

	second, err := s.storage.MarkResultApplied(s.ctx, "result-1")
	s.Require().NoError(err)
	s.False(second)

	other, err := s.storage.MarkResultApplied(s.ctx, "result-2")
	s.Require().NoError(err)
	s.True(other)
}

// Match history tests

func (s *StorageSuite) TestMatchHistoryMostRecentFirst() {
	for _, id := range []string{"match-1", "match-2", "match-3"} {
		record := &model.MatchRecord{
			ID:      id,
			PlayerA: "player-1",
			PlayerB: "player-2",
		}
		s.Require().NoError(s.storage.SaveMatchRecord(s.ctx, record))
	}

	history, err := s.storage.GetMatchHistory(s.ctx, "player-1", 2)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("match-3", history[0].ID)
	s.Equal("match-2", history[1].ID)
}

func (s *StorageSuite) TestMatchHistoryEmpty() {
	history, err := s.storage.GetMatchHistory(s.ctx, "nonexistent", 10)
	s.Require().NoError(err)
	s.Empty(history)
}

// Rating index tests

func (s *StorageSuite) TestTopRatingsOrderedAndLimited() {
	_ = s.storage.UpdateRatingIndex(s.ctx, "player-1", 1200)
	_ = s.storage.UpdateRatingIndex(s.ctx, "player-2", 1450)
	_ = s.storage.UpdateRatingIndex(s.ctx, "player-3", 1100)

	entries, err := s.storage.TopRatings(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(model.PlayerID("player-2"), entries[0].PlayerID)
	s.Equal(model.PlayerID("player-1"), entries[1].PlayerID)
}

func (s *StorageSuite) TestRemoveFromRatingIndex() {
	_ = s.storage.UpdateRatingIndex(s.ctx, "player-1", 1200)

	err := s.storage.RemoveFromRatingIndex(s.ctx, "player-1")
	s.Require().NoError(err)

	entries, err := s.storage.TopRatings(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(entries)
}
