package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/navigation"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware  = "auth middleware"
	LogStaffMiddleware = "staff middleware"
)

// Identities проверяет личность текущей сессии.
type Identities interface {
	RequireIdentity() (*entities.Identity, error)

	RequireStaff() (*entities.Identity, error)
}

// NewAuthMiddleware создает промежуточное ПО для маршрутов, требующих входа.
// Гость получает 401 и переход на страницу входа.
func NewAuthMiddleware(identities Identities, navigator navigation.Navigator, signIn string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		if _, err := identities.RequireIdentity(); err != nil {
			logger.Log(requestCtx).Debug(requestCtx, LogAuthMiddleware, zap.Error(err))
			navigator.Navigate(requestCtx, signIn)
			return respond.Error(ctx, err)
		}
		return ctx.Next()
	}
}

// NewStaffMiddleware создает промежуточное ПО для панели администратора.
// Гость отправляется на вход, пользователь без прав сотрудника получает 403
// и переход на главную.
func NewStaffMiddleware(identities Identities, navigator navigation.Navigator, signIn string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()

		if _, err := identities.RequireIdentity(); err != nil {
			logger.Log(requestCtx).Debug(requestCtx, LogStaffMiddleware, zap.Error(err))
			navigator.Navigate(requestCtx, signIn)
			return respond.Error(ctx, err)
		}
		if _, err := identities.RequireStaff(); err != nil {
			logger.Log(requestCtx).Debug(requestCtx, LogStaffMiddleware, zap.Error(err))
			navigator.Navigate(requestCtx, navigation.PathHome)
			return respond.Error(ctx, err)
		}
		return ctx.Next()
	}
}
