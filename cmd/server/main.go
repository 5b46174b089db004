package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	_ "sessionauth/docs" // swagger docs

	"sessionauth/internal/auth"
	"sessionauth/internal/cache"
	"sessionauth/internal/config"
	"sessionauth/internal/credential"
	"sessionauth/internal/db"
	"sessionauth/internal/handler"
	"sessionauth/internal/logging"
	"sessionauth/internal/repository"
	"sessionauth/internal/router"
	"sessionauth/internal/service"
	"sessionauth/internal/static"
)

const shutdownTimeout = 30 * time.Second

// @title Session Auth API
// @version 1.0
// @description Cookie session authentication with captcha-gated registration.
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "error", "text").Error("load config", "error", err)
		os.Exit(1)
	}
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		log.Error("database init", "error", err)
		os.Exit(1)
	}

	if cfg.ResetDB {
		log.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			log.Warn("drop tables", "error", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Error("migrate", "error", err)
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	hasher, err := credential.NewHasher(cfg.PasswordScheme)
	if err != nil {
		log.Error("password scheme", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sessionRepo := repository.NewSessionRepository(gormDB)
	captchaRepo := repository.NewCaptchaRepository(gormDB)

	// Initialize services
	captchaService := service.NewCaptchaService(captchaRepo, cfg.CaptchaTTL, nil, log)
	sessionService := service.NewSessionService(sessionRepo, userRepo, cacheClient, cfg.SessionTTL, nil)
	authService := service.NewAuthService(userRepo, captchaService, sessionService, hasher)
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	sweeper := service.NewSweeper(sessionRepo, captchaRepo, nil, log)

	// Initialize handlers
	cookies := auth.Cookies{
		Secure:     cfg.SecureCookies,
		SessionTTL: cfg.SessionTTL,
		CaptchaTTL: cfg.CaptchaTTL,
	}
	handlers := router.Handlers{
		Captcha: handler.NewCaptchaHandler(captchaService, cookies, log),
		Auth:    handler.NewAuthHandler(authService, cookies, log),
		User:    handler.NewUserHandler(userService, log),
		Page:    handler.NewPageHandler(static.NewDir(cfg.StaticDir), log),
		Health:  handler.NewHealthHandler(gormDB),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, log, router.Routes(handlers, auth.NewGuard(sessionService, log)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.SweepInterval > 0 {
		go sweeper.Run(ctx, cfg.SweepInterval)
	}

	errorChan := make(chan error, 1)
	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server listening", "addr", addr, "swagger", "http://localhost"+addr+"/swagger/index.html")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error("error during shutdown", "error", err)
		}
	case err := <-errorChan:
		log.Error("server encountered fatal error", "error", err)
		stop()
		os.Exit(1)
	}
	log.Info("server stopped")
}
