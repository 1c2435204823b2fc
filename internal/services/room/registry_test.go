package room

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/dependencies/mocks"
	"github.com/export9/export9-server/internal/dependencies/random"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/protocol"
	"github.com/export9/export9-server/internal/services/bot"
	"github.com/export9/export9-server/internal/services/exports"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/services/scoring"
	"github.com/export9/export9-server/internal/services/session"
	"github.com/export9/export9-server/internal/storage/memory"
	"github.com/export9/export9-server/internal/testutil"
)

type dropNotifier struct{}

func (dropNotifier) Send(model.PlayerID, protocol.ServerMessage) {}

type RegistrySuite struct {
	suite.Suite
	clock    *mocks.MockClock
	manager  *session.Manager
	registry *Registry
	cfg      config.GameConfig
	ctx      context.Context
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func (s *RegistrySuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.Default().Game
	s.ctx = context.Background()

	exportsSvc := exports.New(random.New())
	exportsSvc.GenerateFallback()

	store := memory.New()
	logger := testutil.NopLogger()

	s.manager = session.NewManager(s.cfg, exportsSvc, session.Deps{
		Scoring:  scoring.New(exportsSvc),
		Rating:   rating.New(store, s.clock, logger, 3),
		Bot:      bot.NewService(store, bot.NewGreedyStrategy(exportsSvc), s.clock, random.New(), logger),
		Clock:    s.clock,
		Notifier: dropNotifier{},
		Logger:   logger,
	})
	s.registry = NewRegistry(s.cfg, s.manager, s.clock, random.New(), testutil.NopLogger())
}

func identity(id string) *model.PlayerIdentity {
	return &model.PlayerIdentity{
		ID:          model.PlayerID(id),
		DisplayName: id,
		Kind:        model.IdentityGuest,
		Rating:      1200,
	}
}

func (s *RegistrySuite) TestCreateRoom() {
	room, err := s.registry.Create(s.ctx, identity("host"))
	s.Require().NoError(err)

	s.Len(string(room.Code), codeLength)
	for _, c := range string(room.Code) {
		s.Contains(codeAlphabet, string(c))
	}
	s.Equal(model.PlayerID("host"), room.CreatorID)
	s.Equal(1, room.Players)
	s.Equal(s.clock.Now().Add(s.cfg.RoomTTL), room.ExpiresAt)
}

func (s *RegistrySuite) TestJoinPairsWithCreator() {
	host := identity("host")
	room, err := s.registry.Create(s.ctx, host)
	s.Require().NoError(err)

	engine, err := s.registry.Join(s.ctx, room.Code, identity("guest"))
	s.Require().NoError(err)

	s.Equal([2]model.PlayerID{"host", "guest"}, engine.Players())
	s.Equal(model.SessionRoundActive, engine.State())

	id, ok := s.manager.ActiveSession("host")
	s.Require().True(ok)
	s.Equal(engine.ID(), id)
}

func (s *RegistrySuite) TestJoinIsCaseInsensitive() {
	room, err := s.registry.Create(s.ctx, identity("host"))
	s.Require().NoError(err)

	lower := model.RoomCode(" " + strings.ToLower(string(room.Code)) + " ")
	_, err = s.registry.Join(s.ctx, lower, identity("guest"))
	s.NoError(err)
}

func (s *RegistrySuite) TestGet() {
	room, err := s.registry.Create(s.ctx, identity("host"))
	s.Require().NoError(err)

	got, ok := s.registry.Get(room.Code)
	s.Require().True(ok)
	s.Equal(room.Code, got.Code)

	s.clock.Set(s.clock.Now().Add(s.cfg.RoomTTL + time.Minute))
	_, ok = s.registry.Get(room.Code)
	s.False(ok)
}

func (s *RegistrySuite) TestJoinUnknownCode() {
	_, err := s.registry.Join(s.ctx, "NOPE42", identity("guest"))
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *RegistrySuite) TestJoinExpiredRoom() {
	room, err := s.registry.Create(s.ctx, identity("host"))
	s.Require().NoError(err)

	s.clock.Set(s.clock.Now().Add(s.cfg.RoomTTL + time.Minute))

	_, err = s.registry.Join(s.ctx, room.Code, identity("guest"))
	s.ErrorIs(err, model.ErrRoomExpired)

	// An expired room is gone, not just unjoinable
	_, err = s.registry.Join(s.ctx, room.Code, identity("guest"))
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *RegistrySuite) TestJoinConsumedRoom() {
	room, err := s.registry.Create(s.ctx, identity("host"))
	s.Require().NoError(err)

	_, err = s.registry.Join(s.ctx, room.Code, identity("guest"))
	s.Require().NoError(err)

	_, err = s.registry.Join(s.ctx, room.Code, identity("third"))
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *RegistrySuite) TestJoinAbandonsJoinersOwnRoom() {
	host := identity("host")
	hostRoom, err := s.registry.Create(s.ctx, host)
	s.Require().NoError(err)

	other := identity("other")
	otherRoom, err := s.registry.Create(s.ctx, other)
	s.Require().NoError(err)

	_, err = s.registry.Join(s.ctx, hostRoom.Code, other)
	s.Require().NoError(err)

	// The joiner's own room does not stay open behind a seated player
	_, ok := s.registry.Get(otherRoom.Code)
	s.False(ok)
	_, err = s.registry.Join(s.ctx, otherRoom.Code, identity("third"))
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *RegistrySuite) TestCreatorCannotJoinOwnRoom() {
	host := identity("host")
	room, err := s.registry.Create(s.ctx, host)
	s.Require().NoError(err)

	_, err = s.registry.Join(s.ctx, room.Code, host)
	s.ErrorIs(err, model.ErrRoomFull)
}

func (s *RegistrySuite) TestCreateReplacesOpenRoom() {
	host := identity("host")
	first, err := s.registry.Create(s.ctx, host)
	s.Require().NoError(err)
	second, err := s.registry.Create(s.ctx, host)
	s.Require().NoError(err)

	_, err = s.registry.Join(s.ctx, first.Code, identity("guest"))
	s.ErrorIs(err, model.ErrRoomNotFound)

	_, err = s.registry.Join(s.ctx, second.Code, identity("guest"))
	s.NoError(err)
}

func (s *RegistrySuite) TestCancelClosesRoom() {
	room, err := s.registry.Create(s.ctx, identity("host"))
	s.Require().NoError(err)

	s.registry.Cancel("host")

	_, err = s.registry.Join(s.ctx, room.Code, identity("guest"))
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *RegistrySuite) TestCreateRejectsSeatedPlayer() {
	host := identity("host")
	room, err := s.registry.Create(s.ctx, host)
	s.Require().NoError(err)
	_, err = s.registry.Join(s.ctx, room.Code, identity("guest"))
	s.Require().NoError(err)

	_, err = s.registry.Create(s.ctx, host)
	var conflict *model.AlreadyInSessionError
	s.ErrorAs(err, &conflict)
}
