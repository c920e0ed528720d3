// Package checkout содержит HTTP обработчики купонов, покупок и оплаты.
package checkout

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
)

// Handler содержит HTTP обработчики оформления покупок.
type Handler struct {
	checkout services.CheckoutService
	payments services.PaymentService
}

// NewHandler создает обработчик оформления покупок.
func NewHandler(checkout services.CheckoutService, payments services.PaymentService) *Handler {
	return &Handler{
		checkout: checkout,
		payments: payments,
	}
}

type resultRequest struct {
	Result  string         `json:"result"`
	Payload map[string]any `json:"payload"`
}

// ValidateAccountCoupon проверяет купон для аккаунта.
func (h *Handler) ValidateAccountCoupon(ctx fiber.Ctx) error {
	var req entities.CouponValidationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.checkout.ValidateAccountCoupon(ctx.Context(), req.KodeKupon, req.AccountID)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}

// ValidateTopUpCoupon проверяет купон для пакета пополнения.
func (h *Handler) ValidateTopUpCoupon(ctx fiber.Ctx) error {
	var req entities.CouponValidationRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.checkout.ValidateTopUpCoupon(ctx.Context(), req.KodeKupon, req.ProductID)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}

// BuyAccount создает покупку аккаунта.
func (h *Handler) BuyAccount(ctx fiber.Ctx) error {
	var req entities.AccountPurchaseRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.checkout.BuyAccount(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, result)
}

// BuyTopUp создает покупку пакета пополнения.
func (h *Handler) BuyTopUp(ctx fiber.Ctx) error {
	var req entities.TopUpPurchaseRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.checkout.BuyTopUp(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, result)
}

// VerifyCrypto отправляет хеш крипто-перевода.
func (h *Handler) VerifyCrypto(ctx fiber.Ctx) error {
	var req entities.CryptoVerifyRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.checkout.VerifyCrypto(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}

// Script возвращает параметры скрипта платежного виджета.
func (h *Handler) Script(ctx fiber.Ctx) error {
	return respond.JSON(ctx, http.StatusOK, h.payments.Script())
}

// Resume снова открывает оплату незавершенного заказа.
func (h *Handler) Resume(ctx fiber.Ctx) error {
	token := ctx.Params("token")
	if err := h.checkout.Pay(ctx.Context(), token); err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, entities.CheckoutResult{MidtransToken: token})
}

// Resolve принимает исход оплаты, сообщенный виджетом.
func (h *Handler) Resolve(ctx fiber.Ctx) error {
	var req resultRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	if err := h.payments.Resolve(ctx.Context(), ctx.Params("token"), req.Result, req.Payload); err != nil {
		return respond.Error(ctx, err)
	}
	return ctx.SendStatus(http.StatusNoContent) //nolint:wrapcheck
}
