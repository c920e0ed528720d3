package config

import (
	"net"
	"strconv"
	"time"
)

// HTTPConfig представляет конфигурацию локального HTTP шлюза витрины.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"STOREFRONT_HTTP_HOST" env-default:"127.0.0.1"`
	Port         int           `yaml:"port" env:"STOREFRONT_HTTP_PORT" env-default:"8090"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"STOREFRONT_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"STOREFRONT_HTTP_WRITE_TIMEOUT" env-default:"30s"`
	BodyLimit    int           `yaml:"body_limit" env:"STOREFRONT_HTTP_BODY_LIMIT" env-default:"16777216"`
}

// GetAddress возвращает адрес HTTP сервера.
func (c *HTTPConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
