package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/tasklist/adapter/cli"
	"github.com/felixgeelhaar/tasklist/adapter/cli/api"
	"github.com/felixgeelhaar/tasklist/adapter/cli/mcp"
	"github.com/felixgeelhaar/tasklist/internal/app"
	"github.com/felixgeelhaar/tasklist/pkg/config"
	"github.com/felixgeelhaar/tasklist/pkg/observability"
)

func main() {
	logger := observability.NewLogger(observability.DefaultLogConfig())

	// Load configuration
	cfg := loadConfig(config.Load, logger)

	// Rebuild the logger from config
	logger = observability.NewLogger(newLogConfig(cfg))
	cli.SetLogger(logger)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cli.SetApp(cli.NewApp(app.NewContainer(cfg, logger)))

	// Register commands
	cli.AddCommand(api.Cmd)
	cli.AddCommand(mcp.Cmd)

	code := cli.Execute(ctx)
	cancel()
	os.Exit(code)
}

func loadConfig(load func() (*config.Config, error), logger *slog.Logger) *config.Config {
	cfg, err := load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development", LogLevel: "warn", LogFormat: "text"}
	}
	return cfg
}

// newLogConfig maps config onto the logger. Development builds also record
// source locations.
func newLogConfig(cfg *config.Config) observability.LogConfig {
	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.Format = observability.LogFormat(cfg.LogFormat)
	logCfg.AddSource = cfg.IsDevelopment()
	logCfg.ServiceVersion = cli.Version
	return logCfg
}
