// Package catalog содержит HTTP обработчики каталога и избранного.
package catalog

import (
	"net/http"

	"github.com/gofiber/fiber/v3"

	"gamestore/internal/storefront/adapters/http/respond"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
)

// Handler содержит HTTP обработчики каталога.
type Handler struct {
	catalog   services.CatalogService
	favorites services.FavoritesService
}

// NewHandler создает обработчик каталога.
func NewHandler(catalog services.CatalogService, favorites services.FavoritesService) *Handler {
	return &Handler{
		catalog:   catalog,
		favorites: favorites,
	}
}

// ListAccounts возвращает аккаунты по параметрам search, game и sort.
func (h *Handler) ListAccounts(ctx fiber.Ctx) error {
	accounts, err := h.catalog.Accounts(ctx.Context(), entities.AccountFilter{
		Search: ctx.Query("search"),
		Game:   ctx.Query("game"),
		Sort:   ctx.Query("sort"),
	})
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, accounts)
}

// GetAccount возвращает страницу аккаунта.
func (h *Handler) GetAccount(ctx fiber.Ctx) error {
	page, err := h.catalog.AccountPage(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, page)
}

// ListTopUps возвращает пакеты пополнения, при необходимости по игре.
func (h *Handler) ListTopUps(ctx fiber.Ctx) error {
	products, err := h.catalog.TopUps(ctx.Context(), ctx.Query("game"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, products)
}

// GetTopUp возвращает пакет пополнения.
func (h *Handler) GetTopUp(ctx fiber.Ctx) error {
	product, err := h.catalog.TopUp(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, product)
}

// ListReviews возвращает отзывы по игре.
func (h *Handler) ListReviews(ctx fiber.Ctx) error {
	reviews, err := h.catalog.Reviews(ctx.Context(), ctx.Params("game"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, reviews)
}

// Search ищет по параметру q.
func (h *Handler) Search(ctx fiber.Ctx) error {
	result, err := h.catalog.Search(ctx.Context(), ctx.Query("q"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}

// CheckGameID находит ник игрока.
func (h *Handler) CheckGameID(ctx fiber.Ctx) error {
	var req entities.GameIDCheck
	if err := ctx.Bind().JSON(&req); err != nil {
		return respond.BadRequest(ctx, err)
	}

	result, err := h.catalog.CheckGameID(ctx.Context(), &req)
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}

// ListFavorites возвращает избранные аккаунты.
func (h *Handler) ListFavorites(ctx fiber.Ctx) error {
	accounts, err := h.favorites.List(ctx.Context())
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, accounts)
}

// ToggleFavorite переключает избранное для аккаунта.
func (h *Handler) ToggleFavorite(ctx fiber.Ctx) error {
	result, err := h.favorites.Toggle(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return respond.Error(ctx, err)
	}
	return respond.JSON(ctx, http.StatusOK, result)
}
