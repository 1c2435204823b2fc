package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/dependencies/mocks"
	"github.com/export9/export9-server/internal/dependencies/random"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/services/bot"
	"github.com/export9/export9-server/internal/services/exports"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/services/scoring"
	"github.com/export9/export9-server/internal/storage/memory"
	"github.com/export9/export9-server/internal/testutil"
)

type ManagerSuite struct {
	suite.Suite
	clock   *mocks.MockClock
	manager *Manager
	ctx     context.Context
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	exportsSvc := exports.New(random.New())
	exportsSvc.GenerateFallback()

	store := memory.New()
	logger := testutil.NopLogger()
	deps := Deps{
		Scoring:  scoring.New(exportsSvc),
		Rating:   rating.New(store, s.clock, logger, 3),
		Bot:      bot.NewService(store, bot.NewGreedyStrategy(exportsSvc), s.clock, random.New(), logger),
		Clock:    s.clock,
		Notifier: newFakeNotifier(),
		Logger:   logger,
	}
	s.manager = NewManager(config.Default().Game, exportsSvc, deps)
}

func identity(id string) *model.PlayerIdentity {
	return &model.PlayerIdentity{
		ID:          model.PlayerID(id),
		DisplayName: id,
		Kind:        model.IdentityGuest,
		Rating:      1200,
	}
}

func (s *ManagerSuite) TestCreateSessionSeatsBothPlayers() {
	engine, err := s.manager.CreateSession(s.ctx, identity("p1"), identity("p2"))
	s.Require().NoError(err)

	got, ok := s.manager.Get(engine.ID())
	s.True(ok)
	s.Same(engine, got)

	id, ok := s.manager.ActiveSession("p1")
	s.True(ok)
	s.Equal(engine.ID(), id)

	forP2, ok := s.manager.ForPlayer("p2")
	s.True(ok)
	s.Same(engine, forP2)
}

func (s *ManagerSuite) TestCreateSessionRejectsSeatedPlayer() {
	engine, err := s.manager.CreateSession(s.ctx, identity("p1"), identity("p2"))
	s.Require().NoError(err)

	_, err = s.manager.CreateSession(s.ctx, identity("p1"), identity("p3"))
	var conflict *model.AlreadyInSessionError
	s.Require().ErrorAs(err, &conflict)
	s.Equal(engine.ID(), conflict.SessionID)
	s.Equal(model.PlayerID("p1"), conflict.PlayerID)
}

func (s *ManagerSuite) TestFinishedSessionFreesSeats() {
	engine, err := s.manager.CreateSession(s.ctx, identity("p1"), identity("p2"))
	s.Require().NoError(err)

	s.Require().NoError(engine.HandleQuit("p1"))

	_, ok := s.manager.ActiveSession("p1")
	s.False(ok)
	_, ok = s.manager.ForPlayer("p2")
	s.False(ok)

	// The finished engine stays retrievable for late rejoins
	got, ok := s.manager.Get(engine.ID())
	s.True(ok)
	s.Same(engine, got)

	// And both players can be seated again
	_, err = s.manager.CreateSession(s.ctx, identity("p1"), identity("p2"))
	s.NoError(err)
}

func (s *ManagerSuite) TestReconnectUnknownSession() {
	err := s.manager.Reconnect(s.ctx, "no-such-session", "p1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ManagerSuite) TestReconnectRoutesToEngine() {
	engine, err := s.manager.CreateSession(s.ctx, identity("p1"), identity("p2"))
	s.Require().NoError(err)

	engine.HandleDisconnect("p1")
	s.Require().Equal(model.SessionPaused, engine.State())

	s.Require().NoError(s.manager.Reconnect(s.ctx, engine.ID(), "p1"))
	s.Equal(model.SessionRoundActive, engine.State())

	s.ErrorIs(s.manager.Reconnect(s.ctx, engine.ID(), "intruder"), model.ErrNotInSession)
}

func (s *ManagerSuite) TestOnDisconnectWithoutSessionIsNoOp() {
	s.manager.OnDisconnect("nobody")
}
