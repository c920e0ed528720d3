package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// GatewayObserver учитывает обработанные запросы шлюза.
type GatewayObserver interface {
	ObserveGateway(method, route string, status int, duration time.Duration)
}

// NewMetricsMiddleware создает промежуточное ПО для метрик запросов.
func NewMetricsMiddleware(observer GatewayObserver) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		observer.ObserveGateway(ctx.Method(), ctx.Route().Path, ctx.Response().StatusCode(), time.Since(start))
		return err
	}
}
