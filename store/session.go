package store

import (
	"IntakeKiosk/models"

	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const SessionKeyPrefix = "ADMIN_SESSION:"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedis(cfg RedisConfig) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is empty")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

// RedisSessionCache keeps admin sessions as JSON values that expire after ttl.
type RedisSessionCache struct {
	rdb goredis.Cmdable
	ttl time.Duration
}

func NewRedisSessionCache(rdb goredis.Cmdable, ttl time.Duration) *RedisSessionCache {
	return &RedisSessionCache{rdb: rdb, ttl: ttl}
}

func (c *RedisSessionCache) Put(ctx context.Context, session models.AdminSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, SessionKeyPrefix+session.Token, raw, c.ttl).Err()
}

func (c *RedisSessionCache) Get(ctx context.Context, token string) (*models.AdminSession, error) {
	raw, err := c.rdb.Get(ctx, SessionKeyPrefix+token).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	session := &models.AdminSession{}
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, err
	}
	return session, nil
}
