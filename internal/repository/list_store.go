package repository

import (
	"context"
	"fmt"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ListStore is an append-only collection of named lists. Append puts the
// value at the head, Range returns values head first (newest first).
type ListStore interface {
	Append(ctx context.Context, key string, value []byte) error
	Range(ctx context.Context, key string) ([][]byte, error)
}

// NewListStore returns the backend selected by driver. db and rdb are only
// required by the postgres and redis drivers respectively.
func NewListStore(driver string, db *gorm.DB, rdb *redis.Client) (ListStore, error) {
	switch driver {
	case config.StorageMemory, "":
		return NewMemoryListStore(), nil
	case config.StorageRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis list store requires a redis client")
		}
		return NewRedisListStore(rdb), nil
	case config.StoragePostgres:
		if db == nil {
			return nil, fmt.Errorf("postgres list store requires a database connection")
		}
		return NewGormListStore(db), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", driver)
}
