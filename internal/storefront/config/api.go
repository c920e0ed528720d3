package config

import "time"

// APIConfig описывает подключение к REST API магазина.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url" env:"STOREFRONT_API_BASE_URL" env-required:"true"`
	UserAgent      string        `yaml:"user_agent" env:"STOREFRONT_API_USER_AGENT" env-default:"gamestore-storefront/1.0"`
	Timeout        time.Duration `yaml:"timeout" env:"STOREFRONT_API_TIMEOUT" env-default:"15s"`
	RefreshTimeout time.Duration `yaml:"refresh_timeout" env:"STOREFRONT_API_REFRESH_TIMEOUT" env-default:"10s"`
	RateLimit      float64       `yaml:"rate_limit" env:"STOREFRONT_API_RATE_LIMIT" env-default:"20"`
	RateBurst      int           `yaml:"rate_burst" env:"STOREFRONT_API_RATE_BURST" env-default:"10"`
	RetryAttempts  int           `yaml:"retry_attempts" env:"STOREFRONT_API_RETRY_ATTEMPTS" env-default:"3"`
}
