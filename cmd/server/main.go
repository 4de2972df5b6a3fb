package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/aptadb/internal/config"
	"github.com/JonMunkholm/aptadb/internal/core"
	"github.com/JonMunkholm/aptadb/internal/logging"
	"github.com/JonMunkholm/aptadb/internal/web"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logCloser := logging.Setup(logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	defer logCloser.Close()

	slog.Info("configuration loaded", "config", cfg.String())

	ctx := context.Background()

	src, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		slog.Error("failed to open data source", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	store := core.NewStore(src, core.WithFetchTimeout(cfg.Data.FetchTimeout))
	service := core.NewService(store)
	server := web.NewServer(service, cfg)

	// Create cancellable context for background jobs
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()

	// Warm the cache so the first visitor does not wait on the fetch.
	go func() {
		if _, err := store.Load(jobCtx); err != nil {
			slog.Warn("initial load interrupted", "error", err)
		}
	}()

	if cfg.Data.Watch {
		go func() {
			slog.Info("watching data file", "path", cfg.Data.Source)
			if err := core.WatchFile(jobCtx, cfg.Data.Source, store, cfg.Data.WatchDebounce); err != nil {
				slog.Error("data file watcher stopped", "error", err)
			}
		}()
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		// Stop background jobs
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openSource builds the configured record source. The returned func releases
// any connections it holds.
func openSource(ctx context.Context, cfg *config.Config) (core.Source, func(), error) {
	if !cfg.Data.UsesPostgres() {
		src, err := core.NewSource(cfg.Data.Source, cfg.Data.FetchTimeout, cfg.Data.MaxLineBytes)
		return src, func() {}, err
	}

	// Parse and configure connection pool
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, err
	}

	// Verify connection; a dead database still serves fallback data.
	pingCtx, cancel := context.WithTimeout(ctx, cfg.Data.FetchTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		slog.Warn("database not reachable yet", "error", err)
	} else {
		slog.Info("connected to database", "table", cfg.Data.Table)
	}

	return core.NewPostgresSource(pool, cfg.Data.Table), pool.Close, nil
}
