package sentiment

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rediscontainer "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/pscheid92/moviepulse/internal/domain"
	iredis "github.com/pscheid92/moviepulse/internal/redis"
)

var testRedisURL string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	container, err := rediscontainer.Run(ctx, "redis:7-alpine")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start redis container: %v\n", err)
		os.Exit(1)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get redis endpoint: %v\n", err)
		os.Exit(1)
	}
	testRedisURL = "redis://" + endpoint

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

func setupRedisCache(t *testing.T, ttl time.Duration) *RedisCache {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	client, err := iredis.NewClient(ctx, testRedisURL)
	require.NoError(t, err)

	require.NoError(t, client.Underlying().FlushAll(ctx).Err())

	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewRedisCache(client.Underlying(), ttl)
}

func TestRedisCache_SetAndGet(t *testing.T) {
	cache := setupRedisCache(t, time.Minute)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 278)
	require.NoError(t, err)
	assert.False(t, ok)

	original := testAnalysis(278)
	original.Stats.PositivePercentage = 66.67
	original.Stats.NegativePercentage = 33.33
	require.NoError(t, cache.Set(ctx, original))

	got, ok, err := cache.Get(ctx, 278)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, original.Movie.ID, got.Movie.ID)
	assert.Equal(t, original.Stats, got.Stats)
}

func TestRedisCache_RoundTripsExemplars(t *testing.T) {
	cache := setupRedisCache(t, time.Minute)
	ctx := context.Background()

	rating := 9.0
	original := testAnalysis(155)
	original.BestPositive = &domain.Exemplar{
		Author:     "alice",
		Content:    "great film",
		Rating:     &rating,
		Sentiment:  domain.LabelPositive,
		Confidence: 0.9,
	}
	require.NoError(t, cache.Set(ctx, original))

	got, ok, err := cache.Get(ctx, 155)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.BestPositive)
	assert.Equal(t, "great film", got.BestPositive.Content)
	require.NotNil(t, got.BestPositive.Rating)
	assert.Equal(t, 9.0, *got.BestPositive.Rating)
	assert.Nil(t, got.BestNegative)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	cache := setupRedisCache(t, time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, testAnalysis(278)))

	_, ok, err := cache.Get(ctx, 278)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(1500 * time.Millisecond)

	_, ok, err = cache.Get(ctx, 278)
	require.NoError(t, err)
	assert.False(t, ok)
}
