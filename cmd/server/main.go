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
	"time"

	"github.com/joho/godotenv"

	"hospitalinventory/m/internal/api"
	"hospitalinventory/m/internal/auth"
	"hospitalinventory/m/internal/config"
	"hospitalinventory/m/internal/database"
	"hospitalinventory/m/internal/images"
	"hospitalinventory/m/internal/logging"
	"hospitalinventory/m/internal/migrations"
	"hospitalinventory/m/internal/seed"
	"hospitalinventory/m/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(context.Background(), "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger logging.Logger) error {
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Run(ctx, db); err != nil {
		return err
	}

	if cfg.SeedCSV != "" {
		if _, err := seed.LoadFile(ctx, db, cfg.SeedCSV, logger); err != nil {
			logger.Warn(ctx, "unable to seed inventory", "path", cfg.SeedCSV, "error", err)
		}
	}

	imgs, err := newImageStore(ctx, cfg)
	if err != nil {
		return err
	}

	st := store.New(db)
	handler := api.New(st, auth.NewService(st, 0), imgs, logger, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "hospital inventory server listening", "addr", srv.Addr, "driver", db.DriverName(), "image_store", cfg.ImageStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func newImageStore(ctx context.Context, cfg config.Config) (images.Store, error) {
	if cfg.ImageStore == config.ImageStoreS3 {
		return images.NewS3Store(ctx, cfg.S3)
	}
	return images.NewLocalStore(cfg.UploadDir)
}
