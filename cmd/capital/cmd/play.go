package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/rustyeddy/capital/config"
	"github.com/rustyeddy/capital/internal/scheduler"
	"github.com/rustyeddy/capital/journal"
	"github.com/rustyeddy/capital/sim"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the game clock in real time",
	Long: `Advance the game one in-game hour per second until interrupted.

The game is saved after every hour. play owns the save while it runs:
it overwrites the stored game on every tick, so changes made by other
commands in the meantime are lost. Stop play before running them.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

const lifecycleTimeout = 15 * time.Second

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			func() io.Writer { return cmd.OutOrStdout() },
			newLogger,
			provideStore,
			provideJournal,
			newEngine,
			provideScheduler,
		),
		fx.Invoke(registerPlayLoop),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx, cancel := context.WithTimeout(context.Background(), lifecycleTimeout)
	defer cancel()
	return app.Stop(stopCtx)
}

func provideStore(lc fx.Lifecycle, cfg *config.Config) (journal.Store, error) {
	store, err := newStore(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func provideJournal(lc fx.Lifecycle, cfg *config.Config) (journal.Journal, error) {
	j, err := newJournal(cfg)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return j.Close()
		},
	})
	return j, nil
}

func provideScheduler(e *sim.Engine, logger *zap.Logger, out io.Writer) *scheduler.TickScheduler {
	return scheduler.NewTickScheduler(e, logger, func(res sim.TickResult) {
		fmt.Fprintln(out, tickLine(res))
	})
}

// registerPlayLoop restores the saved game on start, runs the clock in the
// background and saves once more on the way out.
func registerPlayLoop(lc fx.Lifecycle, e *sim.Engine, sched *scheduler.TickScheduler, logger *zap.Logger) {
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := e.Load(ctx); err != nil {
				cancel()
				return err
			}
			go func() {
				defer close(done)
				if err := sched.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("tick scheduler failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			sched.Stop()
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
				return ctx.Err()
			}
			logger.Info("saving game")
			err := e.Save(ctx)
			_ = logger.Sync()
			return err
		},
	})
}
