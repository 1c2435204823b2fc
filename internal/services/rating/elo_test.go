package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKFactor(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		games  int
		want   int
	}{
		{"new player", 1200, 10, 32},
		{"intermediate", 1200, 30, 24},
		{"experienced by games", 1200, 100, 16},
		{"experienced by rating", 2000, 5, 16},
		{"master", 2400, 5, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KFactor(tt.rating, tt.games))
		})
	}
}

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1200, 1200), 0.0001)
	assert.InDelta(t, 0.2403, ExpectedScore(1200, 1400), 0.0001)
	assert.InDelta(t, 0.7597, ExpectedScore(1400, 1200), 0.0001)

	// Expected scores of both sides always sum to 1
	assert.InDelta(t, 1.0, ExpectedScore(1000, 1600)+ExpectedScore(1600, 1000), 0.0001)
}

func TestComputeElo(t *testing.T) {
	tests := []struct {
		name             string
		ratingA, ratingB int
		actualA          float64
		wantA, wantB     int
		wantChange       int
	}{
		{"even match win", 1200, 1200, scoreWin, 1216, 1184, 16},
		{"even match draw", 1200, 1200, scoreDraw, 1200, 1200, 0},
		{"underdog wins", 1200, 1400, scoreWin, 1224, 1376, 24},
		{"favorite wins", 1400, 1200, scoreWin, 1408, 1192, 8},
		{"major upset", 1000, 1600, scoreWin, 1031, 1569, 31},
		{"expert beats beginner", 2000, 1200, scoreWin, 2000, 1200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeElo(tt.ratingA, 10, tt.ratingB, 10, tt.actualA)
			assert.Equal(t, tt.wantA, result.NewA, "new rating A")
			assert.Equal(t, tt.wantB, result.NewB, "new rating B")
			assert.Equal(t, tt.wantChange, result.Change, "change")
		})
	}
}

func TestComputeEloBounds(t *testing.T) {
	result := ComputeElo(110, 10, 1200, 10, scoreLoss)
	assert.Equal(t, MinRating, result.NewA)

	result = ComputeElo(2995, 10, 2995, 10, scoreWin)
	assert.LessOrEqual(t, result.NewA, MaxRating)
}
