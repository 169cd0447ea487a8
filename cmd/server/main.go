package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/pscheid92/moviepulse/internal/classifier"
	"github.com/pscheid92/moviepulse/internal/config"
	"github.com/pscheid92/moviepulse/internal/database"
	"github.com/pscheid92/moviepulse/internal/domain"
	"github.com/pscheid92/moviepulse/internal/logging"
	"github.com/pscheid92/moviepulse/internal/redis"
	"github.com/pscheid92/moviepulse/internal/sentiment"
	"github.com/pscheid92/moviepulse/internal/server"
	"github.com/pscheid92/moviepulse/internal/tmdb"
)

func setupConfig() *config.Config {
	// .env is optional, real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// setupCache picks the Redis cache when REDIS_URL is configured and falls
// back to the in-process cache otherwise. The returned closer is a no-op
// for the in-memory variant.
func setupCache(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (domain.AnalysisCache, func()) {
	if cfg.RedisURL == "" {
		slog.Info("Using in-memory analysis cache", "ttl", cfg.AnalysisCacheTTL)
		return sentiment.NewInMemoryCache(cfg.AnalysisCacheTTL, clock), func() {}
	}

	client, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	slog.Info("Using Redis analysis cache", "ttl", cfg.AnalysisCacheTTL)
	closer := func() { _ = client.Close() }
	return sentiment.NewRedisCache(client.Underlying(), cfg.AnalysisCacheTTL), closer
}

// setupHistory connects the analysis history when DATABASE_URL is configured.
// Returns a nil history and a no-op closer otherwise.
func setupHistory(ctx context.Context, cfg *config.Config) (domain.AnalysisHistory, func()) {
	if cfg.DatabaseURL == "" {
		slog.Info("Analysis history disabled, DATABASE_URL not set")
		return nil, func() {}
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := database.Connect(connectCtx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.EnsureSchema(connectCtx, pool); err != nil {
		slog.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	return database.NewHistoryRepo(pool), pool.Close
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	ctx := context.Background()

	cache, closeCache := setupCache(ctx, cfg, clock)
	defer closeCache()

	history, closeHistory := setupHistory(ctx, cfg)
	defer closeHistory()

	catalog := tmdb.NewClient(cfg.TMDBAPIKey, cfg.TMDBBaseURL, cfg.MaxReviews)
	clf := classifier.NewAnthropic(cfg.AnthropicAPIKey, cfg.ClassifierModel)
	analyzer := sentiment.NewAnalyzer(clf, catalog, cache, history, cfg.ClassifierMaxConcurrency)

	srv := server.NewServer(cfg, analyzer, catalog, history)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
