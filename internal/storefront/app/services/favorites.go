package services

import (
	"context"
	"fmt"
	"net/url"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/domain/entities"
)

// Константы для логирования.
const (
	ErrorFailedToggleFavorite = "failed to toggle favorite"
	ErrorFailedListFavorites  = "failed to list favorites"
)

// Favorites управляет избранными аккаунтами пользователя.
type Favorites struct {
	client     *api.Client
	identities Identities
	catalog    *Catalog
}

// NewFavorites создает сервис избранного. Переключение сбрасывает кэш каталога,
// так как списки аккаунтов содержат признак избранного.
func NewFavorites(client *api.Client, identities Identities, catalog *Catalog) *Favorites {
	return &Favorites{
		client:     client,
		identities: identities,
		catalog:    catalog,
	}
}

// List возвращает избранные аккаунты.
func (f *Favorites) List(ctx context.Context) ([]entities.GameAccount, error) {
	if _, err := f.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	accounts, err := api.GetList[entities.GameAccount](ctx, f.client, "/accounts/favorit/", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListFavorites, err)
	}
	return accounts, nil
}

// Toggle добавляет аккаунт в избранное или убирает его оттуда.
func (f *Favorites) Toggle(ctx context.Context, accountID string) (*entities.FavoriteToggle, error) {
	if _, err := f.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	var result entities.FavoriteToggle
	if err := f.client.Post(ctx, "/accounts/"+url.PathEscape(accountID)+"/toggle-favorite/", nil, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedToggleFavorite, err)
	}

	f.catalog.Invalidate(ctx)
	return &result, nil
}
