package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Domenick1991/flightinventory/config"
	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Minute, time.Second)
	assert.NotNil(t, c)
	assert.NoError(t, c.Close())
}

func TestKeys(t *testing.T) {
	key := domain.NewInventoryKey(42, time.Date(2030, 2, 3, 18, 0, 0, 0, time.UTC))
	assert.Equal(t, "cache:availability:42:2030-02-03", availabilityKey(key))
	assert.Equal(t, "cache:flights", flightsKey())
}

func newTestCache(t *testing.T, availabilityTTL time.Duration) (context.Context, *RedisCache) {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	require.NoError(t, client.FlushDB(ctx).Err())

	c := NewRedisCacheWithClient(client, time.Minute, availabilityTTL)
	t.Cleanup(func() { _ = c.Close() })
	return ctx, c
}

func TestRedisCache_Flights(t *testing.T) {
	ctx, c := newTestCache(t, time.Minute)

	got, err := c.GetFlights(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	flights := []domain.Flight{{
		ID:          1,
		CarrierID:   2,
		Origin:      "DEL",
		Destination: "BOM",
		Fare:        decimal.RequireFromString("1000.00"),
		Capacity:    domain.SeatCounts{100, 20, 5},
	}}
	require.NoError(t, c.SetFlights(ctx, flights))

	got, err = c.GetFlights(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "DEL", got[0].Origin)
	assert.True(t, got[0].Fare.Equal(flights[0].Fare))
	assert.Equal(t, flights[0].Capacity, got[0].Capacity)
}

func TestRedisCache_AvailabilityInvalidate(t *testing.T) {
	ctx, c := newTestCache(t, time.Minute)
	key := domain.NewInventoryKey(7, time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC))

	inv := domain.NewSeatInventory(key, domain.SeatCounts{10, 4, 2})
	require.NoError(t, inv.Reserve(domain.SeatClassBusiness, 3))
	require.NoError(t, c.SetAvailability(ctx, inv.Availability()))

	got, err := c.GetAvailability(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.Available.Of(domain.SeatClassBusiness))

	require.NoError(t, c.InvalidateAvailability(ctx, key))
	got, err = c.GetAvailability(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_AvailabilityDisabled(t *testing.T) {
	ctx, c := newTestCache(t, 0)
	key := domain.NewInventoryKey(8, time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC))

	inv := domain.NewSeatInventory(key, domain.SeatCounts{1, 1, 1})
	require.NoError(t, c.SetAvailability(ctx, inv.Availability()))

	got, err := c.GetAvailability(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
