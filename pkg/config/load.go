// Package config загружает конфигурацию из .env файла или переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"gamestore/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgFailedLoadConfiguration = "failed to load configuration"

	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
	attrSource  = "source"
)

// DefaultEnvPath - путь к .env файлу относительно рабочего каталога.
const DefaultEnvPath = "deploy/.env"

// Load читает конфигурацию типа T. Если файл envPath существует, его значения
// записываются в окружение поверх имеющихся, иначе используется только окружение.
func Load[T any](ctx context.Context, serviceName, envPath string) (*T, error) {
	log := logger.Log(ctx)

	var (
		cfg    T
		err    error
		source = "env"
	)

	if _, statErr := os.Stat(envPath); envPath != "" && statErr == nil {
		source = "file"
		log.Info(ctx, msgLoadingConfiguration,
			zap.String(attrService, serviceName),
			zap.String(attrPath, envPath))
		err = cleanenv.ReadConfig(envPath, &cfg)
	} else {
		if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
			log.Warn(ctx, "env file is not readable, falling back to environment",
				zap.String(attrPath, envPath), zap.Error(statErr))
		}
		log.Info(ctx, msgLoadingConfiguration, zap.String(attrService, serviceName))
		err = cleanenv.ReadEnv(&cfg)
	}

	if err != nil {
		log.Error(ctx, msgFailedLoadConfiguration,
			zap.String(attrService, serviceName),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded,
		zap.String(attrService, serviceName),
		zap.String(attrSource, source))

	return &cfg, nil
}
