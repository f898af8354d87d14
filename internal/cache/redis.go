package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightinventory/config"
	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds read-side copies of the flight catalog and seat availability.
// Entries are never authoritative: reservations always go to the inventory store.
type RedisCache struct {
	client          redis.UniversalClient
	flightsTTL      time.Duration
	availabilityTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL, availabilityTTL time.Duration) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL,
		availabilityTTL,
	)
}

func NewRedisCacheWithClient(client redis.UniversalClient, flightsTTL, availabilityTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:          client,
		flightsTTL:      flightsTTL,
		availabilityTTL: availabilityTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	var flights []domain.Flight
	found, err := c.getJSON(ctx, flightsKey(), &flights)
	if err != nil || !found {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	return c.setJSON(ctx, flightsKey(), flights, c.flightsTTL)
}

// GetAvailability returns nil without error on a cache miss.
func (c *RedisCache) GetAvailability(ctx context.Context, key domain.InventoryKey) (*domain.Availability, error) {
	var a domain.Availability
	found, err := c.getJSON(ctx, availabilityKey(key), &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

func (c *RedisCache) SetAvailability(ctx context.Context, a domain.Availability) error {
	if c.availabilityTTL <= 0 {
		return nil
	}
	key := domain.NewInventoryKey(a.FlightID, a.TravelDate)
	return c.setJSON(ctx, availabilityKey(key), a, c.availabilityTTL)
}

func (c *RedisCache) InvalidateAvailability(ctx context.Context, key domain.InventoryKey) error {
	return c.client.Del(ctx, availabilityKey(key)).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

func flightsKey() string {
	return "cache:flights"
}

func availabilityKey(key domain.InventoryKey) string {
	return fmt.Sprintf("cache:availability:%s", key)
}
