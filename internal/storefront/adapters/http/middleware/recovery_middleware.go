package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogServerPanic         = "server panic"
	ErrorFailedSendOnPanic = "failed to send error response after panic"
)

// NewRecoveryMiddleware создает новое промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				log.Error(requestCtx, LogServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				if sendErr := ctx.Status(http.StatusInternalServerError).JSON(fiber.Map{
					"error": "Internal Server Error",
				}); sendErr != nil {
					log.Error(requestCtx, ErrorFailedSendOnPanic, zap.Error(sendErr))
				}
				err = nil
			}
		}()

		return ctx.Next()
	}
}
