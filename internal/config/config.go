package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv    string
	Port      string
	LogLevel  string
	LogFormat string

	TMDBAPIKey  string
	TMDBBaseURL string
	MaxReviews  int

	AnthropicAPIKey          string
	ClassifierModel          string
	ClassifierMaxConcurrency int

	AnalysisCacheTTL time.Duration

	// Optional: Redis-backed analysis cache when set, in-memory otherwise.
	RedisURL string
	// Optional: analysis history persistence when set, disabled otherwise.
	DatabaseURL string
}

const defaultClassifierModel = "claude-sonnet-4-5-20250929"

func Load() (*Config, error) {
	cacheTTLSeconds, err := getEnvInt("ANALYSIS_CACHE_TTL_SECONDS", 600)
	if err != nil {
		return nil, err
	}
	maxConcurrency, err := getEnvInt("CLASSIFIER_MAX_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}
	maxReviews, err := getEnvInt("MAX_REVIEWS", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:                   getEnv("APP_ENV", "development"),
		Port:                     getEnv("PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "text"),
		TMDBAPIKey:               getEnv("TMDB_API_KEY", ""),
		TMDBBaseURL:              getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		MaxReviews:               maxReviews,
		AnthropicAPIKey:          getEnv("ANTHROPIC_API_KEY", ""),
		ClassifierModel:          getEnv("CLASSIFIER_MODEL", defaultClassifierModel),
		ClassifierMaxConcurrency: maxConcurrency,
		AnalysisCacheTTL:         time.Duration(cacheTTLSeconds) * time.Second,
		RedisURL:                 getEnv("REDIS_URL", ""),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
	}

	if cfg.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if cfg.ClassifierMaxConcurrency < 1 {
		return nil, fmt.Errorf("CLASSIFIER_MAX_CONCURRENCY must be at least 1, got %d", cfg.ClassifierMaxConcurrency)
	}
	if cfg.MaxReviews < 1 {
		return nil, fmt.Errorf("MAX_REVIEWS must be at least 1, got %d", cfg.MaxReviews)
	}
	if cfg.AnalysisCacheTTL < 0 {
		return nil, fmt.Errorf("ANALYSIS_CACHE_TTL_SECONDS must not be negative, got %d", cacheTTLSeconds)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
