package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"example.com/mastermind/internal/config"
	"example.com/mastermind/internal/console"
	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/migrate"
	"example.com/mastermind/internal/store"
	"github.com/dgraph-io/badger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg config.Config
	log *slog.Logger
	out io.Writer

	db  *pgxpool.Pool // nil without DATABASE_URL
	rdb *redis.Client // nil unless SNAPSHOT_BACKEND=redis
	kv  *badger.DB    // nil unless SNAPSHOT_BACKEND=badger

	ledger *store.OutcomeStore
	svc    *game.SessionService
	ui     *console.Console
}

type Options struct {
	In     io.Reader   // defaults to os.Stdin
	Out    io.Writer   // defaults to os.Stdout
	Source game.Source // optional; overrides GAME_SEED
}

func New(ctx context.Context, cfg config.Config, log *slog.Logger, opts Options) (_ *App, err error) {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	rules := game.DefaultRules()
	rules.MaxGuesses = cfg.Game.MaxGuesses
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}

	a := &App{cfg: cfg, log: log, out: opts.Out}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	// --- Postgres (optional outcome ledger) ---
	if cfg.Postgres.URL != "" {
		if cfg.Postgres.RunMigrations {
			if err := migrate.Up(ctx, cfg.Postgres.URL, log); err != nil {
				return nil, err
			}
		}
		a.db, err = pgxpool.New(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if err := ping(ctx, a.db.Ping); err != nil {
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		a.ledger = store.NewOutcomeStore(a.db)
	}

	// --- Snapshot store ---
	persist, err := a.openSnapshotStore(ctx)
	if err != nil {
		return nil, err
	}

	// --- Game ---
	src := opts.Source
	if src == nil {
		if cfg.Game.Seed != 0 {
			src = game.NewSeededSource(cfg.Game.Seed)
		} else {
			src = game.CryptoSource{}
		}
	}
	var rec game.OutcomeRecorder
	if a.ledger != nil {
		rec = a.ledger
	}
	a.svc = game.NewSessionService(rules, game.NewGenerator(rules, src), persist, rec, log)
	a.ui = console.New(opts.In, opts.Out)

	log.Debug("app ready",
		"mode", cfg.Mode,
		"snapshots", cfg.Snapshot.Backend,
		"ledger", a.ledger != nil,
		"max_guesses", rules.MaxGuesses,
	)
	return a, nil
}

func (a *App) openSnapshotStore(ctx context.Context) (game.SessionStore, error) {
	switch a.cfg.Snapshot.Backend {
	case "redis":
		a.rdb = redis.NewClient(&redis.Options{
			Addr: a.cfg.Redis.Addr,
			DB:   a.cfg.Redis.DB,
		})
		if err := ping(ctx, func(ctx context.Context) error { return a.rdb.Ping(ctx).Err() }); err != nil {
			return nil, fmt.Errorf("redis ping (%s db=%d): %w", a.cfg.Redis.Addr, a.cfg.Redis.DB, err)
		}
		return game.NewRedisSessionStore(a.rdb, a.cfg.Redis.SessionTTL), nil

	case "badger":
		if err := os.MkdirAll(a.cfg.Badger.Path, 0o700); err != nil {
			return nil, fmt.Errorf("badger dir: %w", err)
		}
		opts := badger.DefaultOptions(a.cfg.Badger.Path).WithLogger(newBadgerLogger(a.log))
		kv, err := badger.Open(opts)
		if err != nil {
			return nil, fmt.Errorf("badger open: %w", err)
		}
		a.kv = kv
		return game.NewBadgerSessionStore(kv), nil

	default:
		return game.NewInMemorySessionStore(), nil
	}
}

// ping fails fast when a backend is configured but unreachable.
func ping(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return fn(ctx)
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.Mode == "autoplay" {
		return a.runAutoplay(ctx)
	}
	return a.runInteractive(ctx)
}

func (a *App) Close(ctx context.Context) error {
	// best-effort
	if a.ui != nil {
		a.ui.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.log.Warn("badger close", "err", err)
		}
	}
	return nil
}
