// Package orders содержит HTTP обработчики истории покупок и отзывов.
package orders

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
)

// Handler содержит HTTP обработчики заказов.
type Handler struct {
	orders services.OrdersService
}

// NewHandler создает обработчик заказов.
func NewHandler(orders services.OrdersService) *Handler {
	return &Handler{orders: orders}
}

// History возвращает историю покупок.
func (h *Handler) History(ctx fiber.Ctx) error {
	items, err := h.orders.History(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, items)
}

// Detail возвращает заказ по коду транзакции.
func (h *Handler) Detail(ctx fiber.Ctx) error {
	detail, err := h.orders.Detail(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, detail)
}

// ReviewOrder оставляет отзыв на заказ.
func (h *Handler) ReviewOrder(ctx fiber.Ctx) error {
	var req entities.ReviewRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	review, err := h.orders.ReviewOrder(ctx.Context(), ctx.Params("code"), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, review)
}

// ReviewPurchase оставляет отзыв на покупку.
func (h *Handler) ReviewPurchase(ctx fiber.Ctx) error {
	var req entities.ReviewRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	review, err := h.orders.ReviewPurchase(ctx.Context(), ctx.Params("id"), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, review)
}
