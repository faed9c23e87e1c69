package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/georgemunganga/cellar-backend/internal/app"
	"github.com/georgemunganga/cellar-backend/internal/logger"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)

	err := run(ctx)
	quit()
	if err != nil {
		// The zap logger may not exist yet, so failures go to stderr as well.
		log.Fatalf("cellar server: %v", err)
	}
}

func run(ctx context.Context) error {
	a, err := app.New(ctx)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "cellar server error", logger.ErrorF(err))
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}
