// Package cart содержит HTTP обработчики корзины.
package cart

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
)

// Handler содержит HTTP обработчики корзины.
type Handler struct {
	carts    services.CartService
	checkout services.CheckoutService
}

// NewHandler создает обработчик корзины.
func NewHandler(carts services.CartService, checkout services.CheckoutService) *Handler {
	return &Handler{
		carts:    carts,
		checkout: checkout,
	}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get возвращает корзину.
func (h *Handler) Get(ctx fiber.Ctx) error {
	cart, err := h.carts.Get(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, cart)
}

// Count возвращает число позиций.
func (h *Handler) Count(ctx fiber.Ctx) error {
	count, err := h.carts.Count(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, entities.CartCount{Count: count})
}

// Add добавляет товар.
func (h *Handler) Add(ctx fiber.Ctx) error {
	var req entities.AddToCartRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	cart, err := h.carts.Add(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusCreated, cart)
}

// UpdateItem меняет количество позиции.
func (h *Handler) UpdateItem(ctx fiber.Ctx) error {
	var req quantityRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	cart, err := h.carts.UpdateQuantity(ctx.Context(), ctx.Params("id"), req.Quantity)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, cart)
}

// RemoveItem удаляет позицию.
func (h *Handler) RemoveItem(ctx fiber.Ctx) error {
	cart, err := h.carts.Remove(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, cart)
}

// Clear очищает корзину.
func (h *Handler) Clear(ctx fiber.Ctx) error {
	cart, err := h.carts.Clear(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, cart)
}

// Checkout оформляет заказ из корзины.
func (h *Handler) Checkout(ctx fiber.Ctx) error {
	var req entities.CartCheckoutRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.Bind().JSON(&req); err != nil {
			return respond.BadRequest(ctx, err)
		}
	}

	result, err := h.checkout.CheckoutCart(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}
