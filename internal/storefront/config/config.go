// Package config содержит конфигурацию витрины.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "gamestore/pkg/config"
	"gamestore/pkg/logger"
)

// Константы сообщений конфигурации.
const (
	ServiceName         = "storefront"
	LogConfigLoaded     = "storefront configuration"
	ErrFailedLoadConfig = "failed to load storefront configuration"
)

// Config представляет полную конфигурацию витрины.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Storage  StorageConfig  `yaml:"storage"`
	Session  SessionConfig  `yaml:"session"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Payment  PaymentConfig  `yaml:"payment"`
	Locale   LocaleConfig   `yaml:"locale"`
	HTTP     HTTPConfig     `yaml:"http"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из deploy/.env или из окружения.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, pkgconfig.DefaultEnvPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.String("storage_backend", cfg.Storage.Backend),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.Duration("session_check_interval", cfg.Session.CheckInterval),
		zap.Duration("session_refresh_threshold", cfg.Session.RefreshThreshold),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return cfg, nil
}
