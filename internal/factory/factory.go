// Package factory wires the application graph from configuration.
package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/export9/export9-server/internal/config"
	"github.com/export9/export9-server/internal/dependencies/clock"
	"github.com/export9/export9-server/internal/dependencies/random"
	"github.com/export9/export9-server/internal/gateway"
	"github.com/export9/export9-server/internal/guestname"
	"github.com/export9/export9-server/internal/services/bot"
	"github.com/export9/export9-server/internal/services/exports"
	"github.com/export9/export9-server/internal/services/identity"
	"github.com/export9/export9-server/internal/services/matchmaker"
	"github.com/export9/export9-server/internal/services/rating"
	"github.com/export9/export9-server/internal/services/room"
	"github.com/export9/export9-server/internal/services/scoring"
	"github.com/export9/export9-server/internal/services/session"
	"github.com/export9/export9-server/internal/storage"
	"github.com/export9/export9-server/internal/storage/memory"
	redisstorage "github.com/export9/export9-server/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	Clock  clock.Clock
	Random random.Random

	ExportsService    *exports.Service
	ScoringService    *scoring.Service
	RatingService     *rating.Service
	BotService        *bot.Service
	IdentityService   *identity.Service
	SessionManager    *session.Manager
	MatchmakerService *matchmaker.Service
	RoomRegistry      *room.Registry
	Hub               *gateway.Hub
	Gateway           *gateway.Gateway
}

// New creates a new application with all dependencies wired
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	switch cfg.Storage.Type {
	case StorageTypeMemory, "":
		store = memory.New()
	case StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.Redis.URL
		if cfg.Storage.Redis.GuestTTL > 0 {
			redisCfg.GuestIdentityTTL = cfg.Storage.Redis.GuestTTL
		}
		redisStore, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be %q or %q",
			cfg.Storage.Type, StorageTypeMemory, StorageTypeRedis)
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(cfg, store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies
func newWithDependencies(cfg config.Config, store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	exportsSvc := exports.New(rnd)
	scoringSvc := scoring.New(exportsSvc)
	ratingSvc := rating.New(store, clk, logger, cfg.Game.LeaderboardMinGames)
	botSvc := bot.NewService(store, bot.NewGreedyStrategy(exportsSvc), clk, rnd, logger)
	identitySvc := identity.New(store, guestname.New(rnd), clk, logger)

	hub := gateway.NewHub(logger)
	sessionManager := session.NewManager(cfg.Game, exportsSvc, session.Deps{
		Scoring:  scoringSvc,
		Rating:   ratingSvc,
		Bot:      botSvc,
		Clock:    clk,
		Notifier: hub,
		Logger:   logger,
	})
	matchmakerSvc := matchmaker.New(cfg.Game, sessionManager, botSvc, clk, hub, logger)
	roomRegistry := room.NewRegistry(cfg.Game, sessionManager, clk, rnd, logger)
	gw := gateway.New(cfg.Game, hub, identitySvc, matchmakerSvc, roomRegistry, sessionManager, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		ExportsService:    exportsSvc,
		ScoringService:    scoringSvc,
		RatingService:     ratingSvc,
		BotService:        botSvc,
		IdentityService:   identitySvc,
		SessionManager:    sessionManager,
		MatchmakerService: matchmakerSvc,
		RoomRegistry:      roomRegistry,
		Hub:               hub,
		Gateway:           gw,
	}
}
