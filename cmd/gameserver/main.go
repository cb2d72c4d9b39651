package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/yamato-games/sengoku-arena/internal/config"
	"github.com/yamato-games/sengoku-arena/internal/game/ability"
	"github.com/yamato-games/sengoku-arena/internal/game/engine"
)

const GameConfigPath = "configs/game.toml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && ctx.Err() == nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logLevel := parseLogLevel(os.Getenv("SENGOKU_LOG_LEVEL"))
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	cfgPath := GameConfigPath
	if p := os.Getenv("SENGOKU_GAME_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGameServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading game config: %w", err)
	}

	slog.Info("sengoku-arena server starting",
		"bind", cfg.Server.IP,
		"port", cfg.Server.Port,
		"map", cfg.Server.Map,
		"max_player", cfg.Server.MaxPlayer)

	store := ability.NewConfigStore()
	if err := store.LoadFile(cfg.Simulation.AbilityConfigs); err != nil {
		return fmt.Errorf("loading ability configs: %w", err)
	}

	eng := engine.New(engine.Options{
		Store:          store,
		Registry:       ability.NewHeroRegistry(),
		VisionInterval: cfg.Simulation.VisionInterval(),
		VisionMaxAge:   cfg.Simulation.VisionMaxAge,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return eng.Run(ctx, cfg.TickStep())
	})

	err = g.Wait()
	if err == context.Canceled {
		return nil
	}
	return err
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
