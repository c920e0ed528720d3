// Package services содержит прикладные сервисы витрины поверх REST API магазина.
package services

import (
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/services"
)

// Identities проверяет текущую личность сессии.
type Identities interface {
	RequireIdentity() (*entities.Identity, error)

	RequireStaff() (*entities.Identity, error)
}

// Validator проверяет формы до отправки на бэкенд.
type Validator interface {
	Validate(i any) error
}

var (
	_ services.CatalogService   = (*Catalog)(nil)
	_ services.FavoritesService = (*Favorites)(nil)
	_ services.CartService      = (*Carts)(nil)
	_ services.CheckoutService  = (*Checkout)(nil)
	_ services.OrdersService    = (*Orders)(nil)
	_ services.AccountService   = (*Accounts)(nil)
	_ services.AdminService     = (*Admin)(nil)
)
