package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config describes all runtime settings for the game.
//
// Load once in main, validate, pass further explicitly (no global variables).
type Config struct {
	Env    string // dev|prod
	Mode   string // play|autoplay
	Player string

	Log struct {
		Format string // text|json
		Level  slog.Level
	}

	Game struct {
		MaxGuesses int
		Seed       uint64 // 0 => crypto/rand
	}

	Autoplay struct {
		Games   int
		Workers int
	}

	Snapshot struct {
		Backend string // memory|redis|badger
	}

	Redis struct {
		Addr       string
		DB         int
		SessionTTL time.Duration
	}

	Badger struct {
		Path string
	}

	Postgres struct {
		URL           string // empty => no outcome ledger
		RunMigrations bool
	}
}

func LoadFromEnv() (Config, error) {
	var c Config

	c.Env = envString("APP_ENV", "dev")
	c.Mode = envString("MODE", "play")
	c.Player = envString("PLAYER", "local")

	c.Log.Format = envString("LOG_FORMAT", "text")
	if err := c.Log.Level.UnmarshalText([]byte(envString("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var err error
	if c.Game.MaxGuesses, err = parseEnvInt("MAX_GUESSES", 4); err != nil {
		return Config{}, err
	}
	if c.Game.Seed, err = parseEnvUint64("GAME_SEED", 0); err != nil {
		return Config{}, err
	}
	if c.Autoplay.Games, err = parseEnvInt("AUTOPLAY_GAMES", 100); err != nil {
		return Config{}, err
	}
	if c.Autoplay.Workers, err = parseEnvInt("AUTOPLAY_WORKERS", 4); err != nil {
		return Config{}, err
	}

	c.Snapshot.Backend = strings.ToLower(envString("SNAPSHOT_BACKEND", "memory"))

	c.Redis.Addr = envString("REDIS_ADDR", "localhost:6379")
	c.Redis.DB = envInt("REDIS_DB", 0)
	c.Redis.SessionTTL = envDuration("SESSION_TTL", 24*time.Hour)

	c.Badger.Path = envString("BADGER_PATH", "./data/badger")

	c.Postgres.URL = os.Getenv("DATABASE_URL")
	c.Postgres.RunMigrations = envBool("RUN_MIGRATIONS", true)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Mode != "play" && c.Mode != "autoplay" {
		return fmt.Errorf("unsupported MODE=%q (want play|autoplay)", c.Mode)
	}
	if c.Player == "" {
		return errors.New("PLAYER is empty")
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if c.Game.MaxGuesses < 1 {
		return fmt.Errorf("MAX_GUESSES must be positive, got %d", c.Game.MaxGuesses)
	}
	if c.Mode == "autoplay" && (c.Autoplay.Games < 1 || c.Autoplay.Workers < 1) {
		return errors.New("AUTOPLAY_GAMES and AUTOPLAY_WORKERS must be positive")
	}
	switch c.Snapshot.Backend {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("REDIS_ADDR is empty")
		}
	case "badger":
		if c.Badger.Path == "" {
			return errors.New("BADGER_PATH is empty")
		}
	default:
		return fmt.Errorf("unsupported SNAPSHOT_BACKEND=%q (want memory|redis|badger)", c.Snapshot.Backend)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

// parseEnvInt is envInt for keys where a typo must not silently become the
// default.
func parseEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q: want an integer", key, v)
	}
	return n, nil
}

func parseEnvUint64(key string, def uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: want a non-negative integer", key, v)
	}
	return n, nil
}
