package rating

import "math"

// Standard chess-style Elo with K-factor tiers for experience level
const (
	kNewPlayer    = 32 // under 30 games
	kIntermediate = 24 // 30+ games, rating under 2000
	kExperienced  = 16 // 100+ games or rating 2000+
	kMaster       = 12 // rating 2400+

	// InitialRating is assigned to every new identity
	InitialRating = 1200

	// MinRating and MaxRating bound all rating adjustments
	MinRating = 100
	MaxRating = 3000
)

// KFactor returns the update weight for a player's rating and experience
func KFactor(rating, gamesPlayed int) int {
	switch {
	case rating >= 2400:
		return kMaster
	case rating >= 2000 || gamesPlayed >= 100:
		return kExperienced
	case gamesPlayed >= 30:
		return kIntermediate
	default:
		return kNewPlayer
	}
}

// ExpectedScore returns the probability-weighted score a player is
// expected to achieve against an opponent, in [0, 1]
func ExpectedScore(rating, opponentRating int) float64 {
	diff := float64(opponentRating - rating)
	return 1.0 / (1.0 + math.Pow(10, diff/400.0))
}

// EloResult holds the rating adjustment for both players of a match
type EloResult struct {
	NewA int
	NewB int

	// Change is the points gained by the winner, zero on a draw
	Change int
}

// actual scores for each outcome
const (
	scoreWin  = 1.0
	scoreDraw = 0.5
	scoreLoss = 0.0
)

// ComputeElo calculates both players' new ratings from the match
// outcome. actualA is the first player's score: 1 for a win, 0.5 for a
// draw, 0 for a loss.
func ComputeElo(ratingA, gamesA, ratingB, gamesB int, actualA float64) EloResult {
	actualB := 1.0 - actualA

	expectedA := ExpectedScore(ratingA, ratingB)
	expectedB := ExpectedScore(ratingB, ratingA)

	changeA := int(math.Round(float64(KFactor(ratingA, gamesA)) * (actualA - expectedA)))
	changeB := int(math.Round(float64(KFactor(ratingB, gamesB)) * (actualB - expectedB)))

	result := EloResult{
		NewA: clampRating(ratingA + changeA),
		NewB: clampRating(ratingB + changeB),
	}

	switch {
	case actualA > actualB:
		result.Change = abs(changeA)
	case actualB > actualA:
		result.Change = abs(changeB)
	}
	return result
}

func clampRating(r int) int {
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
