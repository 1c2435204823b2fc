package rating

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/storage"
)

// Service applies match results to player ratings and maintains the
// leaderboard index
type Service struct {
	storage  storage.Storage
	clock    clock.Clock
	logger   *slog.Logger
	minGames int
}

// New creates a new rating service. minGames is the number of completed
// games before a player is listed on the leaderboard.
func New(storage storage.Storage, clk clock.Clock, logger *slog.Logger, minGames int) *Service {
	return &Service{
		storage:  storage,
		clock:    clk,
		logger:   logger,
		minGames: minGames,
	}
}

// ApplyResult adjusts both identities' ratings and tallies for a
// finished match, fills in the record's rating fields, and archives the
// record. Each result id is applied at most once; a redelivered result
// returns applied=false with no changes. Matches against the CPU are
// archived but leave ratings untouched.
func (s *Service) ApplyResult(ctx context.Context, record *model.MatchRecord, a, b *model.PlayerIdentity) (result EloResult, applied bool, err error) {
	first, err := s.storage.MarkResultApplied(ctx, record.ID)
	if err != nil {
		return EloResult{}, false, fmt.Errorf("marking result applied: %w", err)
	}
	if !first {
		s.logger.Warn("skipping duplicate match result", "result_id", record.ID)
		return EloResult{}, false, nil
	}

	record.RatingABefore = a.Rating
	record.RatingBBefore = b.Rating
	record.RatingAAfter = a.Rating
	record.RatingBAfter = b.Rating

	if a.IsCPU || b.IsCPU {
		if err := s.storage.SaveMatchRecord(ctx, record); err != nil {
			return EloResult{}, false, fmt.Errorf("saving match record: %w", err)
		}
		return EloResult{NewA: a.Rating, NewB: b.Rating}, true, nil
	}

	result = ComputeElo(a.Rating, a.GamesPlayed, b.Rating, b.GamesPlayed, actualScore(record, a.ID))

	s.applyToIdentity(a, result.NewA, record, a.ID)
	s.applyToIdentity(b, result.NewB, record, b.ID)

	record.RatingAAfter = result.NewA
	record.RatingBAfter = result.NewB

	for _, identity := range []*model.PlayerIdentity{a, b} {
		if err := s.saveIdentity(ctx, identity); err != nil {
			return EloResult{}, false, err
		}
	}
	if err := s.storage.SaveMatchRecord(ctx, record); err != nil {
		return EloResult{}, false, fmt.Errorf("saving match record: %w", err)
	}

	s.logger.Info("applied match result",
		"result_id", record.ID,
		"player_a", a.ID, "rating_a", result.NewA,
		"player_b", b.ID, "rating_b", result.NewB)
	return result, true, nil
}

func (s *Service) applyToIdentity(identity *model.PlayerIdentity, newRating int, record *model.MatchRecord, id model.PlayerID) {
	identity.Rating = newRating
	identity.GamesPlayed++
	identity.LastPlayed = s.clock.Now()
	switch record.WinnerID {
	case "":
		identity.Draws++
	case id:
		identity.Wins++
	default:
		identity.Losses++
	}
}

// saveIdentity persists the identity and keeps the leaderboard index in
// step. Guest ratings are stored for the identity's lifetime but never
// indexed; only remotely persisted identities are ranked.
func (s *Service) saveIdentity(ctx context.Context, identity *model.PlayerIdentity) error {
	if err := s.storage.SaveIdentity(ctx, identity); err != nil {
		return fmt.Errorf("saving identity %s: %w", identity.ID, err)
	}
	if identity.Persistence() != model.PersistenceRemote {
		return nil
	}
	if identity.GamesPlayed < s.minGames {
		return nil
	}
	if err := s.storage.UpdateRatingIndex(ctx, identity.ID, identity.Rating); err != nil {
		return fmt.Errorf("updating rating index for %s: %w", identity.ID, err)
	}
	return nil
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Rank        int            `json:"rank"`
	PlayerID    model.PlayerID `json:"player_id"`
	DisplayName string         `json:"display_name"`
	Rating      int            `json:"rating"`
	GamesPlayed int            `json:"games_played"`
	Wins        int            `json:"wins"`
}

// Leaderboard returns the top rated players, best first
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	top, err := s.storage.TopRatings(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching top ratings: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(top))
	for _, row := range top {
		identity, err := s.storage.GetIdentity(ctx, row.PlayerID)
		if err != nil {
			// Identity may have been deleted out from under the index
			s.logger.Warn("dropping stale leaderboard row", "player_id", row.PlayerID)
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:        len(entries) + 1,
			PlayerID:    identity.ID,
			DisplayName: identity.DisplayName,
			Rating:      identity.Rating,
			GamesPlayed: identity.GamesPlayed,
			Wins:        identity.Wins,
		})
	}
	return entries, nil
}

// actualScore maps the record's winner to the first player's Elo score
func actualScore(record *model.MatchRecord, playerA model.PlayerID) float64 {
	switch record.WinnerID {
	case "":
		return scoreDraw
	case playerA:
		return scoreWin
	default:
		return scoreLoss
	}
}
