package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/cache"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogCacheHit            = "catalog cache hit"
	LogCacheReadFailed     = "catalog cache read failed"
	LogCacheWriteFailed    = "catalog cache write failed"
	LogCacheInvalidateFail = "catalog cache invalidation failed"
	LogOptionalPartFailed  = "optional account page part failed to load"

	ErrorFailedListAccounts = "failed to list accounts"
	ErrorFailedGetAccount   = "failed to get account"
	ErrorFailedListTopUps   = "failed to list top-up products"
	ErrorFailedGetTopUp     = "failed to get top-up product"
	ErrorFailedListReviews  = "failed to list reviews"
	ErrorFailedCheckGameID  = "failed to check game id"
)

// Префикс ключей кэша каталога.
const CachePrefix = "catalog:"

// Catalog отдает публичные списки аккаунтов и пакетов пополнения.
type Catalog struct {
	client    *api.Client
	cache     cache.Cache
	ttl       time.Duration
	validator Validator
}

// NewCatalog создает каталог. cache может быть nil: тогда списки не кэшируются.
func NewCatalog(client *api.Client, c cache.Cache, ttl time.Duration, validator Validator) *Catalog {
	return &Catalog{
		client:    client,
		cache:     c,
		ttl:       ttl,
		validator: validator,
	}
}

// Accounts возвращает список аккаунтов.
func (c *Catalog) Accounts(ctx context.Context, filter entities.AccountFilter) ([]entities.GameAccount, error) {
	query := filter.Query()
	key := CachePrefix + "accounts:" + query.Encode()

	accounts, err := cached(ctx, c, key, func() ([]entities.GameAccount, error) {
		return api.GetList[entities.GameAccount](ctx, c.client, "/accounts/", query)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListAccounts, err)
	}
	return accounts, nil
}

// Account возвращает аккаунт по идентификатору.
func (c *Catalog) Account(ctx context.Context, id string) (*entities.GameAccount, error) {
	var account entities.GameAccount
	if err := c.client.Get(ctx, "/accounts/"+url.PathEscape(id)+"/", nil, &account); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetAccount, err)
	}
	return &account, nil
}

// SimilarAccounts возвращает аккаунты, похожие на id.
func (c *Catalog) SimilarAccounts(ctx context.Context, id string) ([]entities.GameAccount, error) {
	accounts, err := api.GetList[entities.GameAccount](ctx, c.client, "/accounts/"+url.PathEscape(id)+"/similar/", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListAccounts, err)
	}
	return accounts, nil
}

// AccountPage собирает страницу аккаунта. Отзывы и похожие аккаунты
// необязательны: их ошибки только логируются.
func (c *Catalog) AccountPage(ctx context.Context, id string) (*entities.AccountPage, error) {
	account, err := c.Account(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &entities.AccountPage{
		Account: account,
		Reviews: []entities.Review{},
		Similar: []entities.GameAccount{},
	}

	if reviews, err := c.Reviews(ctx, account.Game); err != nil {
		logger.Log(ctx).Warn(ctx, LogOptionalPartFailed, zap.String("part", "reviews"), zap.Error(err))
	} else {
		page.Reviews = reviews
	}

	if similar, err := c.SimilarAccounts(ctx, id); err != nil {
		logger.Log(ctx).Warn(ctx, LogOptionalPartFailed, zap.String("part", "similar"), zap.Error(err))
	} else {
		page.Similar = similar
	}

	return page, nil
}

// TopUps возвращает пакеты пополнения, при необходимости по игре.
func (c *Catalog) TopUps(ctx context.Context, game string) ([]entities.TopUpProduct, error) {
	query := url.Values{}
	if game != "" {
		query.Set("game", game)
	}
	key := CachePrefix + "topups:" + query.Encode()

	products, err := cached(ctx, c, key, func() ([]entities.TopUpProduct, error) {
		return api.GetList[entities.TopUpProduct](ctx, c.client, "/topup-products/", query)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListTopUps, err)
	}
	return products, nil
}

// TopUp возвращает пакет пополнения.
func (c *Catalog) TopUp(ctx context.Context, id string) (*entities.TopUpProduct, error) {
	var product entities.TopUpProduct
	if err := c.client.Get(ctx, "/topup-products/"+url.PathEscape(id)+"/", nil, &product); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetTopUp, err)
	}
	return &product, nil
}

// Reviews возвращает отзывы по игре.
func (c *Catalog) Reviews(ctx context.Context, game string) ([]entities.Review, error) {
	key := CachePrefix + "reviews:" + game

	reviews, err := cached(ctx, c, key, func() ([]entities.Review, error) {
		return api.GetList[entities.Review](ctx, c.client, "/reviews/"+url.PathEscape(game)+"/", nil)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListReviews, err)
	}
	return reviews, nil
}

// Search ищет аккаунты и пакеты пополнения по названию или игре.
func (c *Catalog) Search(ctx context.Context, query string) (*entities.SearchResult, error) {
	query = strings.TrimSpace(query)
	result := &entities.SearchResult{
		Query:    query,
		Accounts: []entities.GameAccount{},
		TopUps:   []entities.TopUpProduct{},
	}
	if query == "" {
		return result, nil
	}

	accounts, err := c.Accounts(ctx, entities.AccountFilter{Search: query})
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Matches(query) {
			result.Accounts = append(result.Accounts, accounts[i])
		}
	}

	products, err := c.TopUps(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].Matches(query) {
			result.TopUps = append(result.TopUps, products[i])
		}
	}

	return result, nil
}

// CheckGameID находит ник игрока по игровому ID.
func (c *Catalog) CheckGameID(ctx context.Context, req *entities.GameIDCheck) (*entities.GameIDCheckResult, error) {
	if err := c.validator.Validate(req); err != nil {
		return nil, err
	}

	var result entities.GameIDCheckResult
	if err := c.client.Post(ctx, "/check-game-id/", req, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedCheckGameID, err)
	}
	return &result, nil
}

// Invalidate сбрасывает кэш каталога.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	if err := c.cache.DeletePrefix(ctx, CachePrefix); err != nil {
		logger.Log(ctx).Warn(ctx, LogCacheInvalidateFail, zap.Error(err))
	}
}

// cached читает список из кэша или загружает его. Сбои кэша не мешают загрузке.
func cached[T any](ctx context.Context, c *Catalog, key string, load func() ([]T, error)) ([]T, error) {
	log := logger.Log(ctx).With(zap.String("key", key))

	if c.cache != nil {
		raw, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn(ctx, LogCacheReadFailed, zap.Error(err))
		case raw != "":
			var items []T
			if err := json.Unmarshal([]byte(raw), &items); err == nil {
				log.Debug(ctx, LogCacheHit)
				return items, nil
			}
		}
	}

	items, err := load()
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := c.cache.Set(ctx, key, string(data), c.ttl); err != nil {
				log.Warn(ctx, LogCacheWriteFailed, zap.Error(err))
			}
		}
	}
	return items, nil
}
