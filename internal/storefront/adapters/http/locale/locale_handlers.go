// Package locale содержит HTTP обработчики выбора языка.
package locale

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/ports/services"
)

// Handler содержит HTTP обработчики языка интерфейса.
type Handler struct {
	locale services.LocaleService
}

// NewHandler создает обработчик языка.
func NewHandler(locale services.LocaleService) *Handler {
	return &Handler{locale: locale}
}

type changeRequest struct {
	Language string `json:"language"`
}

// Get возвращает текущий язык и словарь.
func (h *Handler) Get(ctx fiber.Ctx) error {
	return respond.JSON(ctx, http.StatusOK, fiber.Map{
		"language":     h.locale.Language(),
		"translations": h.locale.Dictionary(),
	})
}

// Change переключает язык.
func (h *Handler) Change(ctx fiber.Ctx) error {
	var req changeRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	if err := h.locale.Change(ctx.Context(), req.Language); err != nil {
		return respond.Error(ctx, err)
	}
	return h.Get(ctx)
}
