package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/usedari/dari-go/internal/app"
	"github.com/usedari/dari-go/internal/config"
	"github.com/usedari/dari-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "smoketest failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	smoke, err := app.NewSmokeTest(cfg, log)
	if err != nil {
		return fmt.Errorf("init smoketest: %w", err)
	}

	if err := smoke.Run(ctx); err != nil {
		return fmt.Errorf("smoketest run: %w", err)
	}

	return nil
}
