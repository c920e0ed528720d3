package config

import (
	"time"

	"gamestore/pkg/db/redis"
	"gamestore/pkg/logger"
)

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"STOREFRONT_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"STOREFRONT_LOGGER_MODE" env-default:"production"`
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == string(logger.Development) {
		return logger.Development
	}
	return logger.Production
}

// ShutdownConfig представляет конфигурацию корректного завершения работы.
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"STOREFRONT_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// RedisConfig используется для хранилища Redis и кэша каталога.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled" env:"STOREFRONT_REDIS_ENABLED" env-default:"false"`
	Host     string        `yaml:"host" env:"STOREFRONT_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"STOREFRONT_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"STOREFRONT_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"STOREFRONT_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"STOREFRONT_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"STOREFRONT_REDIS_TIMEOUT" env-default:"3s"`
}

// ClientConfig преобразует настройки в конфигурацию общего клиента Redis.
func (c *RedisConfig) ClientConfig() *redis.Config {
	return &redis.Config{
		Host:     c.Host,
		Port:     c.Port,
		Password: c.Password,
		DB:       c.DB,
		PoolSize: c.PoolSize,
		Timeout:  c.Timeout,
	}
}
