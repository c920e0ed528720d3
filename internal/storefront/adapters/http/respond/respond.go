// Package respond формирует JSON ответы шлюза и сопоставляет ошибки со статусами.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/app/locale"
	appservices "gamestore/internal/storefront/app/services"
	"gamestore/internal/storefront/app/validation"
	"gamestore/internal/storefront/ports/payment"
	"gamestore/internal/storefront/ports/services"
	"gamestore/internal/storefront/resilience"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogRequestRejected    = "request rejected"
	ErrorInvalidRequest   = "invalid request"
	ErrorInternal         = "internal server error"
	ErrorBackendUnhealthy = "store backend is temporarily unavailable"
)

// JSON отправляет тело со статусом.
func JSON(ctx fiber.Ctx, status int, body any) error {
	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Message отправляет {"error": message} со статусом.
func Message(ctx fiber.Ctx, status int, message string) error {
	return JSON(ctx, status, fiber.Map{"error": message})
}

// BadRequest сообщает о нечитаемом теле запроса.
func BadRequest(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
	return Message(ctx, http.StatusBadRequest, ErrorInvalidRequest)
}

// Error сопоставляет ошибку сервиса с ответом. Ответы бэкенда со статусом
// вне 2xx передаются без изменений.
func Error(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	var formErrs *validation.Errors
	if errors.As(err, &formErrs) {
		return JSON(ctx, http.StatusBadRequest, fiber.Map{
			"error":  formErrs.Error(),
			"fields": formErrs.Fields,
		})
	}

	if apiErr, ok := api.AsAPIError(err); ok {
		log.Info(requestCtx, LogRequestRejected, zap.Int("status", apiErr.StatusCode), zap.Error(err))
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		if err := ctx.Status(apiErr.StatusCode).Send(apiErr.Body); err != nil {
			return fmt.Errorf("error sending response: %w", err)
		}
		return nil
	}

	status := Status(err)
	if status >= http.StatusInternalServerError {
		log.Error(requestCtx, LogRequestRejected, zap.Int("status", status), zap.Error(err))
	} else {
		log.Info(requestCtx, LogRequestRejected, zap.Int("status", status), zap.Error(err))
	}

	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		message = ErrorInternal
	case http.StatusServiceUnavailable:
		message = ErrorBackendUnhealthy
	}
	return Message(ctx, status, message)
}

// Status возвращает HTTP статус для ошибки сервиса.
func Status(err error) int {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated),
		errors.Is(err, services.ErrSessionExpired),
		errors.Is(err, services.ErrNoCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, payment.ErrUnknownToken):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, locale.ErrUnsupportedLanguage),
		errors.Is(err, payment.ErrUnknownResult),
		errors.Is(err, payment.ErrEmptyToken):
		return http.StatusBadRequest
	case errors.Is(err, appservices.ErrAlreadyReviewed):
		return http.StatusConflict
	case errors.Is(err, resilience.ErrCircuitOpen):
		return http.StatusServiceUnavailable
	case errors.Is(err, services.ErrTransport),
		errors.Is(err, appservices.ErrNoPaymentToken):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
