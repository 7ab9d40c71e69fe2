package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"fyyur/internal/store"
	"fyyur/shared/go/config"
	"fyyur/shared/go/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load("config/local.env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.SetGlobalLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Startup.MigrateOnStart {
		if err := migrateDatabase(cfg.Database.URL); err != nil {
			logger.Fatal(err, "Failed to migrate database")
		}
		logger.Info("Database migrations applied")
	}

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()

	dataStore := store.New(db)

	if cfg.Startup.SeedDemoData {
		if err := bootstrapDemoData(ctx, dataStore); err != nil {
			logger.Fatal(err, "Failed to seed demo data")
		}
	}

	srv, err := newHTTPServer(cfg, dataStore)
	if err != nil {
		logger.Fatal(err, "Failed to build HTTP server")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("delete_policy", cfg.Directory.DeletePolicy).Msg("Fyyur listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error(err, "Server error")
		}
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "Graceful shutdown failed")
		}
	}
}
