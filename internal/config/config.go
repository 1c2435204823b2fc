package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Game    GameConfig    `mapstructure:"game"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	// Type is "memory" or "redis"
	Type  string      `mapstructure:"type"`
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	URL      string        `mapstructure:"url"`
	GuestTTL time.Duration `mapstructure:"guest_ttl"`
}

// GameConfig holds the tunable match rules
type GameConfig struct {
	// RoundsPerSession is the number of rounds in a full match
	RoundsPerSession int `mapstructure:"rounds_per_session"`

	// HandSize is the number of country cards dealt to each player
	HandSize int `mapstructure:"hand_size"`

	// RoundDuration is how long players have to pick a card each round
	RoundDuration time.Duration `mapstructure:"round_duration"`

	// ResultDisplayDuration is the pause between a round resolving and
	// the next round starting
	ResultDisplayDuration time.Duration `mapstructure:"result_display_duration"`

	// GraceWindow is how long a disconnected player's session is held
	// open for reconnection before forfeiting
	GraceWindow time.Duration `mapstructure:"grace_window"`

	// CPUWaitThreshold is the minimum time a player must wait in the
	// matchmaking pool before a CPU opponent may be requested
	CPUWaitThreshold time.Duration `mapstructure:"cpu_wait_threshold"`

	// CPUThinkDelay is the artificial delay before the CPU plays its card
	CPUThinkDelay time.Duration `mapstructure:"cpu_think_delay"`

	// WaitSignalInterval is how often a queued player is sent a waiting
	// status update
	WaitSignalInterval time.Duration `mapstructure:"wait_signal_interval"`

	// RoomTTL is how long a private room code stays joinable
	RoomTTL time.Duration `mapstructure:"room_ttl"`

	// LeaderboardMinGames is the minimum completed games before a
	// player appears on the leaderboard
	LeaderboardMinGames int `mapstructure:"leaderboard_min_games"`
}

// Default returns the configuration used when no file or environment
// overrides are present
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			LogLevel:        "info",
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Type: "memory",
			Redis: RedisConfig{
				URL:      "redis://localhost:6379/0",
				GuestTTL: 7 * 24 * time.Hour,
			},
		},
		Game: GameConfig{
			RoundsPerSession:      9,
			HandSize:              10,
			RoundDuration:         20 * time.Second,
			ResultDisplayDuration: 5 * time.Second,
			GraceWindow:           30 * time.Second,
			CPUWaitThreshold:      5 * time.Second,
			CPUThinkDelay:         2 * time.Second,
			WaitSignalInterval:    5 * time.Second,
			RoomTTL:               24 * time.Hour,
			LeaderboardMinGames:   3,
		},
	}
}

// Load reads configuration from the given file path if non-empty, then
// applies EXPORT9_* environment overrides on top of the defaults
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("EXPORT9")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the game engine cannot run with
func (c *Config) Validate() error {
	if c.Game.RoundsPerSession < 1 {
		return fmt.Errorf("rounds_per_session must be at least 1, got %d", c.Game.RoundsPerSession)
	}
	if c.Game.HandSize < c.Game.RoundsPerSession {
		return fmt.Errorf("hand_size (%d) must be at least rounds_per_session (%d)",
			c.Game.HandSize, c.Game.RoundsPerSession)
	}
	if c.Game.RoundDuration <= 0 {
		return fmt.Errorf("round_duration must be positive, got %s", c.Game.RoundDuration)
	}
	if c.Game.GraceWindow < 0 {
		return fmt.Errorf("grace_window must not be negative, got %s", c.Game.GraceWindow)
	}
	switch c.Storage.Type {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}
	return nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.log_level", d.Server.LogLevel)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("storage.type", d.Storage.Type)
	v.SetDefault("storage.redis.url", d.Storage.Redis.URL)
	v.SetDefault("storage.redis.guest_ttl", d.Storage.Redis.GuestTTL)
	v.SetDefault("game.rounds_per_session", d.Game.RoundsPerSession)
	v.SetDefault("game.hand_size", d.Game.HandSize)
	v.SetDefault("game.round_duration", d.Game.RoundDuration)
	v.SetDefault("game.result_display_duration", d.Game.ResultDisplayDuration)
	v.SetDefault("game.grace_window", d.Game.GraceWindow)
	v.SetDefault("game.cpu_wait_threshold", d.Game.CPUWaitThreshold)
	v.SetDefault("game.cpu_think_delay", d.Game.CPUThinkDelay)
	v.SetDefault("game.wait_signal_interval", d.Game.WaitSignalInterval)
	v.SetDefault("game.room_ttl", d.Game.RoomTTL)
	v.SetDefault("game.leaderboard_min_games", d.Game.LeaderboardMinGames)
}
