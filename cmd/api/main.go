package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oluwaseyi-a/DocuQuery/internal/app"
	"github.com/oluwaseyi-a/DocuQuery/internal/config"
	"github.com/oluwaseyi-a/DocuQuery/internal/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		<-c
		cancel()
	}()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel, cfg.Env)

	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("startup failed")
	}
	defer application.Close()

	go func() {
		if err := application.Server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	logger.Info().Msg("DocuQuery is running.")
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
