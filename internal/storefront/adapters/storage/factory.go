package storage

import (
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"gamestore/internal/storefront/config"
	"gamestore/internal/storefront/ports/storage"
)

// ErrUnknownBackend возвращается для неизвестного типа хранилища.
var ErrUnknownBackend = errors.New("unknown storage backend")

// ErrRedisRequired возвращается, если выбран Redis, а клиент не передан.
var ErrRedisRequired = errors.New("redis storage backend requires a redis client")

// New создает хранилище, выбранное в конфигурации.
func New(cfg *config.StorageConfig, rdb *redis.Client) (storage.KV, error) {
	switch cfg.Backend {
	case config.StorageMemory:
		return NewMemory(), nil
	case config.StorageFile:
		return NewFile(cfg.FilePath)
	case config.StorageRedis:
		if rdb == nil {
			return nil, ErrRedisRequired
		}
		return NewRedis(rdb, cfg.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
