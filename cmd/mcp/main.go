package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/fut-draft/internal/app"
	"github.com/riskibarqy/fut-draft/internal/config"
	"github.com/riskibarqy/fut-draft/internal/platform/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.NewJSON(logging.LevelInfo).Error("load config", "error", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel).Named("mcp").With("service", cfg.ServiceName, "env", cfg.AppEnv)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if cfg.MCPAPIKey == "" {
		logger.Warn("MCP_API_KEY is empty, mcp endpoint is unauthenticated")
	}

	stopObservability, err := app.StartObservability(cfg, logger)
	if err != nil {
		logger.Error("start observability", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	services, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}

	srv, err := app.NewMCPServer(cfg, services, logger)
	if err != nil {
		logger.Error("build mcp server", "error", err)
		os.Exit(1)
	}

	exitCode := 0
	if err := app.Serve(ctx, srv, "mcp", logger); err != nil {
		logger.Error("mcp server", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	stopObservability(shutdownCtx)
	if err := services.Close(); err != nil {
		logger.Warn("close services", "error", err)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
