package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"leadform/internal/config"
	"leadform/internal/handler"
	"leadform/internal/httpserver"
	"leadform/internal/mailer"
	"leadform/internal/repository"
	"leadform/internal/service"
	"leadform/pkg/db"
	"leadform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Starting leadform server...",
		zap.String("db_host", cfg.DB.Host),
		zap.Int("db_port", cfg.DB.Port),
		zap.String("port", cfg.Server.Port),
	)

	// DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("Failed to init DB", zap.Error(err))
	}
	defer dbConn.Close()

	// Notifier
	notifier, err := mailer.NewSMTPNotifier(cfg.SMTP, cfg.Admin.Email, log)
	if err != nil {
		log.Fatal("Failed to init SMTP notifier", zap.Error(err))
	}

	// Repositories
	submissionRepo := repository.NewSubmissionRepository(dbConn)

	// Services
	formService := service.NewFormService(submissionRepo, notifier, log)
	authService := service.NewAuthService(cfg.Admin, cfg.JWT.Secret)

	// Handlers
	formHandler := handler.NewFormHandler(formService)
	adminHandler := handler.NewAdminHandler(authService)

	// Router
	router := httpserver.NewRouter(formHandler, adminHandler, cfg.JWT.Secret, dbConn)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.Engine,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down leadform server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	dbConn.Close()

	log.Info("leadform server shutdown complete")
}
