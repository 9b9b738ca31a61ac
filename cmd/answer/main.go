package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/initify/callconnect/internal/app"
	"github.com/initify/callconnect/internal/logger"
)

func main() {
	cfg, err := app.LoadConfigFromEnv()
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(cfg *app.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("answer webhook starting", "addr", cfg.Addr(), "connect_to", cfg.SecondNumber)
	return app.NewServer(cfg, log).Run(ctx)
}
