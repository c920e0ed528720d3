package config

import "time"

// SessionConfig задает периодическую проверку токена.
type SessionConfig struct {
	CheckInterval    time.Duration `yaml:"check_interval" env:"STOREFRONT_SESSION_CHECK_INTERVAL" env-default:"1m"`
	RefreshThreshold time.Duration `yaml:"refresh_threshold" env:"STOREFRONT_SESSION_REFRESH_THRESHOLD" env-default:"2m"`
	SignInPath       string        `yaml:"sign_in_path" env:"STOREFRONT_SESSION_SIGN_IN_PATH" env-default:"/login"`
}

// CatalogConfig задает кэширование публичных списков.
type CatalogConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl" env:"STOREFRONT_CACHE_TTL" env-default:"2m"`
}

// PaymentConfig содержит параметры платежного виджета.
type PaymentConfig struct {
	SnapURL   string `yaml:"snap_url" env:"STOREFRONT_PAYMENT_SNAP_URL" env-default:"https://app.sandbox.midtrans.com/snap/snap.js"`
	ClientKey string `yaml:"client_key" env:"STOREFRONT_PAYMENT_CLIENT_KEY" env-default:""`
}

// LocaleConfig задает язык системы, используемый до выбора пользователем.
type LocaleConfig struct {
	SystemLanguage string `yaml:"system_language" env:"LANG" env-default:"en"`
}
