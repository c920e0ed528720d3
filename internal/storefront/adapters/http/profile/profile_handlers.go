// Package profile содержит HTTP обработчики смены и сброса пароля.
package profile

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
)

// Handler содержит HTTP обработчики профиля.
type Handler struct {
	accounts services.AccountService
}

// NewHandler создает обработчик профиля.
func NewHandler(accounts services.AccountService) *Handler {
	return &Handler{accounts: accounts}
}

// ChangePassword меняет пароль.
func (h *Handler) ChangePassword(ctx fiber.Ctx) error {
	var req entities.ChangePasswordRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.accounts.ChangePassword(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}

// RequestReset просит письмо для сброса пароля.
func (h *Handler) RequestReset(ctx fiber.Ctx) error {
	var req entities.PasswordResetRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.accounts.RequestPasswordReset(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}

// ConfirmReset устанавливает новый пароль по ссылке из письма.
func (h *Handler) ConfirmReset(ctx fiber.Ctx) error {
	var req entities.PasswordResetConfirm
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.accounts.ConfirmPasswordReset(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}
