package config

import (
	"log"
	"os"
	"strings"
	"sync"
)

const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

type StorageConfig struct {
	Driver          string
	ApplicationsKey string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

// LoadStorageConfig picks the list store backend. When STORAGE_DRIVER is unset
// it falls back to redis if REDIS_URL is present, otherwise memory.
func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
		if driver == "" {
			driver = StorageMemory
			if os.Getenv("REDIS_URL") != "" {
				driver = StorageRedis
			}
		}
		switch driver {
		case StorageMemory, StorageRedis, StoragePostgres:
		default:
			log.Printf("Warning: unknown STORAGE_DRIVER %q, using %s", driver, StorageMemory)
			driver = StorageMemory
		}
		key := os.Getenv("APPLICATIONS_KEY")
		if key == "" {
			key = "user:applications"
		}
		storageConfig = &StorageConfig{
			Driver:          driver,
			ApplicationsKey: key,
		}
	})
	return storageConfig
}
