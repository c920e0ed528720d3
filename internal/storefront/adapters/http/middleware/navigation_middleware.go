package middleware

import (
	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/navigation"
)

// HeaderNavigateTo - заголовок ответа с путем, на который должен перейти интерфейс.
const HeaderNavigateTo = "X-Navigate-To"

// PendingNavigations отдает переход, запрошенный вне обработки запроса.
type PendingNavigations interface {
	TakePending() string
}

// NewNavigationMiddleware создает промежуточное ПО, которое передает интерфейсу
// переход, запрошенный обработчиком, или отложенный переход.
func NewNavigationMiddleware(pending PendingNavigations) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, sink := navigation.WithSink(ctx.Context())
		ctx.SetContext(requestCtx)

		err := ctx.Next()

		target := sink.Target()
		if queued := pending.TakePending(); target == "" {
			target = queued
		}
		if target != "" {
			ctx.Set(HeaderNavigateTo, target)
		}
		return err
	}
}
