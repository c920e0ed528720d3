package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/adapters/cache"
	httpServer "gamestore/internal/storefront/adapters/http"
	"gamestore/internal/storefront/adapters/navigation"
	"gamestore/internal/storefront/adapters/payment"
	"gamestore/internal/storefront/adapters/storage"
	"gamestore/internal/storefront/app/credentials"
	"gamestore/internal/storefront/app/locale"
	"gamestore/internal/storefront/app/services"
	"gamestore/internal/storefront/app/session"
	"gamestore/internal/storefront/app/validation"
	"gamestore/internal/storefront/config"
	"gamestore/internal/storefront/metrics"
	portcache "gamestore/internal/storefront/ports/cache"
	"gamestore/internal/storefront/resilience"
	"gamestore/pkg/db/redis"
	"gamestore/pkg/logger"
	"gamestore/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "STOREFRONT_LOGGER_MODE"
	EnvLoggerLevel = "STOREFRONT_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrCreateStorage        = "failed to create storage"
	ErrCreateAPIClient      = "failed to create API client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "storefront started"
	LogServiceShutdownDone = "storefront shutdown complete"
	LogInitRedis           = "initializing Redis"
	LogInitStorage         = "initializing storage"
	LogInitAPI             = "initializing API client"
	LogInitSession         = "initializing session"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogStoppingMonitor     = "stopping session monitor"
	LogClosingRedis        = "closing Redis connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		var redisClient *redis.Client
		var catalogCache portcache.Cache
		if cfg.Redis.Enabled || cfg.Storage.Backend == config.StorageRedis {
			log.Info(ctx, LogInitRedis)
			redisClient, err = redis.NewClient(ctx, cfg.Redis.ClientConfig())
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				exitCode = 1
				return
			}
			catalogCache = cache.NewRedisCache(redisClient.RawClient(), cfg.Catalog.CacheTTL)
		}

		log.Info(ctx, LogInitStorage, zap.String("backend", cfg.Storage.Backend))
		kv, err := storage.New(&cfg.Storage, redisClient.RawClient())
		if err != nil {
			log.Error(ctx, ErrCreateStorage, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitAPI, zap.String("base_url", cfg.API.BaseURL))
		collector := metrics.NewCollector()

		retryCfg := resilience.DefaultRetryConfig()
		if cfg.API.RetryAttempts > 0 {
			retryCfg.MaxAttempts = cfg.API.RetryAttempts
		}
		base := resilience.NewTransport("store-api", retryCfg, resilience.DefaultCircuitBreakerConfig(),
			api.NewThrottleTransport(cfg.API.RateLimit, cfg.API.RateBurst, http.DefaultTransport))

		rawClient, err := api.NewClient(cfg.API.BaseURL, cfg.API.UserAgent,
			&http.Client{Transport: base, Timeout: cfg.API.Timeout}, collector)
		if err != nil {
			log.Error(ctx, ErrCreateAPIClient, zap.Error(err))
			exitCode = 1
			return
		}
		tokens := api.NewTokenClient(rawClient)
		store := credentials.NewStore(kv)
		refresher := api.NewRefresher(store, tokens, cfg.API.RefreshTimeout, collector)

		client, err := api.NewClient(cfg.API.BaseURL, cfg.API.UserAgent,
			&http.Client{Transport: api.NewAuthTransport(store, refresher, base), Timeout: cfg.API.Timeout}, collector)
		if err != nil {
			log.Error(ctx, ErrCreateAPIClient, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitSession)
		navigator := navigation.NewRecorder()
		userSession := session.New(ctx, &cfg.Session, store, tokens, refresher, navigator)
		monitor := session.NewMonitor(userSession, cfg.Session.CheckInterval)
		monitor.Start(ctx)

		log.Info(ctx, LogInitServices)
		validator := validation.New()
		language := locale.New(ctx, kv, cfg.Locale.SystemLanguage)
		snap := payment.NewSnap(&cfg.Payment)

		catalog := services.NewCatalog(client, catalogCache, cfg.Catalog.CacheTTL, validator)
		carts := services.NewCarts(client, userSession, validator)
		userSession.OnChange(carts.Reset)

		log.Info(ctx, LogInitHTTPServer)
		app := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		})

		httpServer.SetupRouter(app, &httpServer.Dependencies{
			Session:   userSession,
			Locale:    language,
			Catalog:   catalog,
			Favorites: services.NewFavorites(client, userSession, catalog),
			Carts:     carts,
			Checkout:  services.NewCheckout(client, userSession, validator, snap, navigator, carts),
			Payments:  snap,
			Orders:    services.NewOrders(client, userSession, validator),
			Accounts:  services.NewAccounts(client, userSession, validator),
			Admin:     services.NewAdmin(client, userSession, validator, catalog),
			Validator: validator,
			Navigator: navigator,
			Metrics:   collector,
			SignIn:    cfg.Session.SignInPath,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := app.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.Timeout,
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return app.ShutdownWithContext(ctx)
			},
			// Остановка проверки сессии.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingMonitor)
				return monitor.Stop(ctx)
			},
			// Закрытие Redis соединения.
			func(ctx context.Context) error {
				if redisClient == nil {
					return nil
				}
				log.Info(ctx, LogClosingRedis)
				return redisClient.Close()
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
