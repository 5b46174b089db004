// Command sweep purges expired sessions and captcha challenges once and
// exits. It reads the same configuration as the server.
package main

import (
	"context"
	"os"
	"time"

	"sessionauth/internal/config"
	"sessionauth/internal/db"
	"sessionauth/internal/logging"
	"sessionauth/internal/repository"
	"sessionauth/internal/service"
)

const sweepTimeout = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "error", "text").Error("load config", "error", err)
		os.Exit(1)
	}
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	sweeper := service.NewSweeper(
		repository.NewSessionRepository(gormDB),
		repository.NewCaptchaRepository(gormDB),
		nil,
		log,
	)
	res, err := sweeper.Sweep(ctx)
	if err != nil {
		log.Error("sweep failed", "error", err, "sessions", res.Sessions, "captchas", res.Captchas)
		os.Exit(1)
	}
	log.Info("sweep completed", "sessions", res.Sessions, "captchas", res.Captchas)
}
