package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"membertrack/internal/config"
	"membertrack/internal/db"
	"membertrack/internal/logger"
	"membertrack/internal/server"
)

// @title MemberTrack API
// @version 1.0
// @description Membership management API: members, payments, dashboard stats and spreadsheet import/export.
// @host localhost:8080
// @BasePath /
func main() {

	logger.Init()
	logger.Info("Starting MemberTrack application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Infof("Opening database at %s", cfg.DatabasePath)
	database, err := db.Connect(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()
	logger.Info("Database opened")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	srv := server.New(database, cfg)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
