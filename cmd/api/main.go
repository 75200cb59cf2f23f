package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hris-dashboard/internal/app"
	"hris-dashboard/internal/bootstrap"
	"hris-dashboard/internal/config"
	"hris-dashboard/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	logger, err := bootstrap.NewLogger(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// build dependency + routes
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close backends failed", zap.Error(err))
		}
	}()

	err = bootstrap.StartHTTPServer(
		ctx,
		a.Router,
		bootstrap.ServerConfig{
			Addr:         cfg.Addr,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewZapAuditLogger(logger),
	)
	if err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
