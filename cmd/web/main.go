package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"pet-care-center/internal/adapters/storage/postgres"
	"pet-care-center/internal/platform/config"
	"pet-care-center/internal/platform/logger"
	"pet-care-center/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional (dev); en deploy las vars vienen del entorno.
	_ = godotenv.Load()

	logger.Setup()
	cfg := config.FromEnv()

	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			slog.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		db = opened
		defer db.Close()
	} else {
		slog.Warn("no DB_DSN set, running with in-memory storage")
	}

	r := router.NewRouter(router.Options{
		DB:            db,
		UploadsDir:    cfg.UploadsDir,
		SessionTTL:    cfg.SessionTTL,
		SecureCookies: cfg.SecureCookies,
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	slog.Info("starting server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
