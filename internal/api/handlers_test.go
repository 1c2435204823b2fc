package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/dependencies/random"
	"github.com/export9/export9-server/internal/gateway"
	"github.com/export9/export9-server/internal/guestname"
	"github.com/export9/export9-server/internal/model"
	"github.com/export9/export9-server/internal/services/bot"
	"github.com/export9/export9-server/internal/services/exports"
	"github.com/export9/export9-server/internal/services/identity"
	"github.com/export9/export9-server/internal/services/matchmaker"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/services/room"
	"github.com/export9/export9-server/internal/services/scoring"
	"github.com/export9/export9-server/internal/services/session"
	"github.com/export9/export9-server/internal/storage/memory"
	"github.com/export9/export9-server/internal/testutil"
)

type HandlersSuite struct {
	suite.Suite
	server  *httptest.Server
	storage *memory.Storage
	ctx     context.Context
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersSuite))
}

func (s *HandlersSuite) SetupTest() {
	cfg := config.Default().Game
	clk := clock.New()
	rnd := random.New()
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.ctx = context.Background()

	exportsSvc := exports.New(rnd)
	exportsSvc.GenerateFallback()

	ratingSvc := rating.New(s.storage, clk, logger, cfg.LeaderboardMinGames)
	botSvc := bot.NewService(s.storage, bot.NewGreedyStrategy(exportsSvc), clk, rnd, logger)
	identities := identity.New(s.storage, guestname.New(rnd), clk, logger)

	hub := gateway.NewHub(logger)
	sessions := session.NewManager(cfg, exportsSvc, session.Deps{
		Scoring:  scoring.New(exportsSvc),
		Rating:   ratingSvc,
		Bot:      botSvc,
		Clock:    clk,
		Notifier: hub,
		Logger:   logger,
	})
	matchmakerSvc := matchmaker.New(cfg, sessions, botSvc, clk, hub, logger)
	rooms := room.NewRegistry(cfg, sessions, clk, rnd, logger)
	gw := gateway.New(cfg, hub, identities, matchmakerSvc, rooms, sessions, logger)

	router := NewRouter(RouterConfig{
		Logger:        logger,
		Gateway:       gw,
		RatingService: ratingSvc,
		Storage:       s.storage,
	})
	s.server = httptest.NewServer(router)
}

func (s *HandlersSuite) TearDownTest() {
	s.server.Close()
}

func (s *HandlersSuite) get(path string, out any) *http.Response {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *HandlersSuite) seedRankedPlayer(id string, ranking, games int) {
	player := &model.PlayerIdentity{
		ID:          model.PlayerID(id),
		DisplayName: id,
		Kind:        model.IdentityRegistered,
		Rating:      ranking,
		GamesPlayed: games,
		CreatedAt:   time.Now(),
	}
	s.Require().NoError(s.storage.SaveIdentity(s.ctx, player))
	s.Require().NoError(s.storage.UpdateRatingIndex(s.ctx, player.ID, player.Rating))
}

func (s *HandlersSuite) TestHealth() {
	var body map[string]string
	resp := s.get("/api/v1/health", &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("ok", body["status"])
}

func (s *HandlersSuite) TestLeaderboard() {
	s.seedRankedPlayer("strong", 1500, 20)
	s.seedRankedPlayer("stronger", 1700, 30)
	s.seedRankedPlayer("mid", 1300, 10)

	var body struct {
		Entries []rating.LeaderboardEntry `json:"entries"`
	}
	resp := s.get("/api/v1/leaderboard", &body)
	s.Equal(http.StatusOK, resp.StatusCode)

	s.Require().Len(body.Entries, 3)
	s.Equal(model.PlayerID("stronger"), body.Entries[0].PlayerID)
	s.Equal(1, body.Entries[0].Rank)
	s.Equal(model.PlayerID("strong"), body.Entries[1].PlayerID)
	s.Equal(model.PlayerID("mid"), body.Entries[2].PlayerID)
}

func (s *HandlersSuite) TestLeaderboardLimit() {
	for i := 0; i < 5; i++ {
		s.seedRankedPlayer(fmt.Sprintf("p%d", i), 1200+i*10, 10)
	}

	var body struct {
		Entries []rating.LeaderboardEntry `json:"entries"`
	}
	resp := s.get("/api/v1/leaderboard?limit=2", &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Len(body.Entries, 2)
}

func (s *HandlersSuite) TestHistory() {
	s.seedRankedPlayer("ann", 1250, 5)
	record := &model.MatchRecord{
		ID:        "result-abc",
		SessionID: "abc",
		PlayerA:   "ann",
		PlayerB:   "ben",
		WinnerID:  "ann",
		ScoreA:    5,
		ScoreB:    3,
	}
	s.Require().NoError(s.storage.SaveMatchRecord(s.ctx, record))

	var body struct {
		Matches []*model.MatchRecord `json:"matches"`
	}
	resp := s.get("/api/v1/players/ann/history", &body)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Require().Len(body.Matches, 1)
	s.Equal(model.SessionID("abc"), body.Matches[0].SessionID)
}

func (s *HandlersSuite) TestHistoryUnknownPlayer() {
	resp := s.get("/api/v1/players/ghost/history", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
