package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pet-care-insights/internal/domain/detection"
)

const DefaultPrefix = "petcare:"

type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// DetectionCache guarda detecciones como JSON en Redis.
type DetectionCache struct {
	rdb    redis.UniversalClient
	prefix string
}

func New(cfg Config) *DetectionCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewWithClient(rdb, cfg.Prefix)
}

func NewWithClient(rdb redis.UniversalClient, prefix string) *DetectionCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &DetectionCache{rdb: rdb, prefix: prefix}
}

func (c *DetectionCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *DetectionCache) Close() error {
	return c.rdb.Close()
}

func (c *DetectionCache) Get(ctx context.Context, key string) (detection.Detection, bool, error) {
	data, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return detection.Detection{}, false, nil
	}
	if err != nil {
		return detection.Detection{}, false, fmt.Errorf("redis get: %w", err)
	}

	var d detection.Detection
	if err := json.Unmarshal(data, &d); err != nil {
		return detection.Detection{}, false, fmt.Errorf("redis decode: %w", err)
	}
	return d, true, nil
}

func (c *DetectionCache) Set(ctx context.Context, key string, d detection.Detection, ttl time.Duration) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("redis encode: %w", err)
	}
	if err := c.rdb.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
