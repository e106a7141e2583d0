package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cursedclash/clash-server-go/internal/config"
	"github.com/cursedclash/clash-server-go/internal/game"
	"github.com/cursedclash/clash-server-go/internal/game/catalog"
	"github.com/cursedclash/clash-server-go/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting Cursed Clash server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *zap.Logger) error {
	cat, err := catalog.NewWithOverrides(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	opts := []game.Option{
		game.WithRules(game.Rules{
			HandSize:     cfg.Engine.HandSize,
			RegenPercent: cfg.Engine.RegenPercent,
		}),
	}
	if cfg.Engine.Seed != 0 {
		opts = append(opts, game.WithSeed(cfg.Engine.Seed))
		logger.Info("deterministic seeding enabled", zap.Uint64("seed", cfg.Engine.Seed))
	}
	if cfg.Engine.RecordReplays {
		opts = append(opts, game.WithReplayRecorder(game.NewReplayRecorder(logger.Named("replay"))))
	}

	engine, err := game.NewEngine(logger.Named("engine"), cat, opts...)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	logger.Info("engine ready",
		zap.Int("characters", len(cat.Characters())),
		zap.Int("hand_size", cfg.Engine.HandSize),
		zap.Int("regen_percent", cfg.Engine.RegenPercent),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg.Server, engine, logger.Named("server")).Run(ctx)
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
