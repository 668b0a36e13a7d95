package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/awards/internal/adapters/handler/http"
	"github.com/vncsmyrnk/awards/internal/adapters/oauth/google"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/awards/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/awards/internal/core/ports"
	"github.com/vncsmyrnk/awards/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg, err := loadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	var (
		catalogRepo ports.CatalogRepository
		voteRepo    ports.VoteRepository
		healthCheck http.HealthCheck
	)

	switch cfg.Storage {
	case storagePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to reach database: %w", err)
		}

		catalogRepo = postgres.NewCatalogRepository(db)
		voteRepo = postgres.NewVoteRepository(db)
		healthCheck = db.PingContext
	case storageMemory:
		store := memory.NewStore()
		if cfg.CatalogSeed != "" {
			seeded, err := memory.NewStoreFromFile(cfg.CatalogSeed)
			if err != nil {
				return err
			}
			store = seeded
		}
		logger.Warn("using in-memory storage, votes are lost on restart")
		catalogRepo = store
		voteRepo = store
	}

	var identity ports.IdentityProvider
	switch cfg.AuthProvider {
	case authGoogle:
		identity = google.NewVerifier(cfg.GoogleClientID)
	default:
		identity = services.NewAuthService([]byte(cfg.JWTSecret), cfg.JWTAudience)
	}
	voteSvc := services.NewVoteService(catalogRepo, voteRepo)

	authMiddleware := http.NewAuthMiddleware(identity, logger)
	voteHandler := http.NewVoteHandler(voteSvc, logger)
	handler := http.NewHandler(voteHandler, authMiddleware, healthCheck)

	server := &stdhttp.Server{Addr: fmt.Sprintf("0.0.0.0:%d", cfg.Port), Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", server.Addr, "storage", cfg.Storage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
