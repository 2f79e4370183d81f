package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisListStore maps each list onto a Redis list. LPUSH keeps the newest
// element at index 0, so LRANGE 0 -1 is already newest first.
type RedisListStore struct {
	rdb *redis.Client
}

func NewRedisListStore(rdb *redis.Client) *RedisListStore {
	return &RedisListStore{rdb: rdb}
}

func (s *RedisListStore) Append(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.LPush(ctx, key, value).Err(); err != nil {
		return fmt.Errorf("redis lpush %s: %w", key, err)
	}
	return nil
}

func (s *RedisListStore) Range(ctx context.Context, key string) ([][]byte, error) {
	vals, err := s.rdb.LRange(ctx, key, 0, -1).Result()
	if errors.Is(err, redis.Nil) {
		return [][]byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis lrange %s: %w", key, err)
	}
	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		out = append(out, []byte(v))
	}
	return out, nil
}

// NewRedisClient parses url, connects and pings.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
