package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/rustyeddy/capital/config"
	"github.com/rustyeddy/capital/internal/id"
	"github.com/rustyeddy/capital/internal/logging"
	"github.com/rustyeddy/capital/journal"
	"github.com/rustyeddy/capital/sim"
)

// loadConfig reads --config, or the default config file when it exists,
// then applies environment and flag overrides.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			path = ""
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, cfg.Log.Development)
}

func newStore(ctx context.Context, cfg *config.Config) (journal.Store, error) {
	switch cfg.Store.Type {
	case "sqlite":
		return journal.NewSQLiteStore(cfg.Store.DBPath)
	case "redis":
		return journal.NewRedisStore(ctx, journal.RedisOptions{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
	case "memory":
		return journal.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
}

func newJournal(cfg *config.Config) (journal.Journal, error) {
	switch cfg.Journal.Type {
	case "", "none":
		return journal.NopJournal{}, nil
	case "csv":
		return journal.NewCSV(cfg.Journal.LoansFile, cfg.Journal.DaysFile)
	case "sqlite":
		return journal.NewSQLite(cfg.Journal.DBPath)
	}
	return nil, fmt.Errorf("unknown journal type %q", cfg.Journal.Type)
}

func newEngine(cfg *config.Config, store journal.Store, j journal.Journal, logger *zap.Logger) *sim.Engine {
	return sim.NewEngine(sim.Options{
		Store:   store,
		Key:     cfg.Store.Key,
		Journal: j,
		Logger:  logger,
		Seed:    cfg.Game.Seed,
	})
}

// session is everything a one-shot command needs: the engine restored
// from the store, and the resources to release afterwards.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	store   journal.Store
	journal journal.Journal
	engine  *sim.Engine
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	j, err := newJournal(cfg)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("open journal: %w", err)
	}

	s := &session{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		journal: j,
		engine:  newEngine(cfg, store, j, logger),
	}

	loaded, err := s.engine.Load(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}
	// A new game is saved straight away so the offers a read-only command
	// shows are the ones the next command finds.
	if !loaded {
		if err := s.engine.Save(ctx); err != nil {
			s.Close()
			return nil, err
		}
	}
	return s, nil
}

func (s *session) Close() {
	if err := s.journal.Close(); err != nil {
		s.logger.Warn("close journal", zap.Error(err))
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("close store", zap.Error(err))
	}
	_ = s.logger.Sync()
}

// withEngine runs fn against the saved game and persists the result.
func withEngine(ctx context.Context, fn func(e *sim.Engine) error) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := fn(s.engine); err != nil {
		return err
	}
	return s.engine.Save(ctx)
}

// resolveID matches a full handle or the short suffix shown in listings.
// A well-formed handle that matches nothing is passed on for the engine to
// report as not found.
func resolveID(ids []string, arg string) (string, error) {
	arg = strings.ToUpper(strings.TrimSpace(arg))
	if arg == "" {
		return "", fmt.Errorf("empty id")
	}

	var match string
	for _, candidate := range ids {
		if candidate == arg {
			return candidate, nil
		}
		if strings.HasSuffix(candidate, arg) {
			if match != "" {
				return "", fmt.Errorf("id %q is ambiguous", arg)
			}
			match = candidate
		}
	}
	if match == "" {
		if !id.Valid(arg) {
			return "", fmt.Errorf("no id ends in %q", arg)
		}
		return arg, nil
	}
	return match, nil
}
