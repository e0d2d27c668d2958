package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Birthday records never change after creation, so they can be
// cached for a long window; memory lists are invalidated on every append.
const (
	TTLBirthday = 30 * time.Minute
	TTLMemories = 5 * time.Minute
	TTLDefault  = 5 * time.Minute
)

// Cache key prefixes
const (
	PrefixBirthday = "birthday:"
	PrefixMemories = "memories:"
)

// Service is a Redis-backed JSON cache
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	GetBirthday(ctx context.Context, id string, dest interface{}) error
	SetBirthday(ctx context.Context, id string, data interface{}) error

	GetMemories(ctx context.Context, birthdayID string, dest interface{}) error
	SetMemories(ctx context.Context, birthdayID string, data interface{}) error
	InvalidateMemories(ctx context.Context, birthdayID string) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no redis, skip silently
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, nil
	}
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) GetBirthday(ctx context.Context, id string, dest interface{}) error {
	return c.Get(ctx, PrefixBirthday+id, dest)
}

func (c *redisCache) SetBirthday(ctx context.Context, id string, data interface{}) error {
	return c.Set(ctx, PrefixBirthday+id, data, TTLBirthday)
}

func (c *redisCache) GetMemories(ctx context.Context, birthdayID string, dest interface{}) error {
	return c.Get(ctx, PrefixMemories+birthdayID, dest)
}

func (c *redisCache) SetMemories(ctx context.Context, birthdayID string, data interface{}) error {
	return c.Set(ctx, PrefixMemories+birthdayID, data, TTLMemories)
}

func (c *redisCache) InvalidateMemories(ctx context.Context, birthdayID string) error {
	return c.Delete(ctx, PrefixMemories+birthdayID)
}
