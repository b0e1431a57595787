package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tglogin/internal/auth/telegram"
	"tglogin/internal/config"
	"tglogin/internal/handler"
	"tglogin/internal/logger"
	"tglogin/internal/router"
	"tglogin/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	verifier := telegram.NewVerifier(cfg.Telegram.BotToken)
	if !verifier.Configured() {
		zl.Warn("telegram bot token is not configured; logins will fail until it is set")
	}

	// Initialize services
	authSvc := service.NewAuthService(verifier, cfg.JWT, zl)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	healthH := handler.NewHealthHandler(verifier)

	// Setup router
	r := router.Setup(zl, cfg.CORS.AllowedOrigins, authSvc, authH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("bot", cfg.Telegram.BotName))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
