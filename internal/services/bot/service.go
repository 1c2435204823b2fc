package bot

import (
	"context"
	"log/slog"

	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/dependencies/random"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/storage"
)

const (
	// PlayerIDAlphabet is the character set for generating CPU player IDs
	PlayerIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// PlayerIDLength is the length of generated CPU player IDs
	PlayerIDLength = 16

	// DisplayName is shown to opponents of the CPU
	DisplayName = "CPU Trader"
)

// Service manages the CPU opponent
type Service struct {
	storage  storage.Storage
	strategy Strategy
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewService creates a new CPU opponent service
func NewService(
	store storage.Storage,
	strategy Strategy,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:  store,
		strategy: strategy,
		clock:    clk,
		random:   rnd,
		logger:   logger.With(slog.String("component", "bot-service")),
	}
}

// CreateCPUIdentity creates a fresh CPU identity for one match. CPU
// identities are guests and never accumulate rating.
func (s *Service) CreateCPUIdentity(ctx context.Context) (*model.PlayerIdentity, error) {
	identity := &model.PlayerIdentity{
		ID:          model.PlayerID("cpu-" + s.random.String(PlayerIDLength, PlayerIDAlphabet)),
		DisplayName: DisplayName,
		Kind:        model.IdentityGuest,
		Rating:      1200,
		IsCPU:       true,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SaveIdentity(ctx, identity); err != nil {
		return nil, err
	}

	s.logger.Info("created cpu identity", slog.String("player_id", string(identity.ID)))
	return identity, nil
}

// ChooseCard picks the CPU's play for a round
func (s *Service) ChooseCard(hand model.Hand, product model.Product) (model.Card, bool) {
	return s.strategy.ChooseCard(hand, product)
}
