// Package middleware содержит промежуточное ПО для HTTP обработчиков шлюза.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"gamestore/pkg/logger"
)

// NewRequestIDMiddleware создает промежуточное ПО, которое связывает запрос
// с идентификатором из заголовка X-Request-ID или с новым.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(logger.HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx.SetContext(logger.NewRequestIDContext(ctx.Context(), requestID))
		ctx.Set(logger.HeaderRequestID, requestID)

		return ctx.Next()
	}
}
