package services

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogCartReset          = "cart state reset"
	LogCartRefreshFailed  = "cart refresh failed"
	ErrorFailedGetCart    = "failed to get cart"
	ErrorFailedCountCart  = "failed to count cart items"
	ErrorFailedAddToCart  = "failed to add item to cart"
	ErrorFailedUpdateItem = "failed to update cart item"
	ErrorFailedRemoveItem = "failed to remove cart item"
	ErrorFailedClearCart  = "failed to clear cart"
	ErrorFailedCheckout   = "failed to checkout cart"
)

// Carts управляет корзиной текущего пользователя и помнит ее последнее состояние.
type Carts struct {
	client     *api.Client
	identities Identities
	validator  Validator

	mu   sync.RWMutex
	last *entities.Cart
}

// NewCarts создает сервис корзины.
func NewCarts(client *api.Client, identities Identities, validator Validator) *Carts {
	return &Carts{
		client:     client,
		identities: identities,
		validator:  validator,
	}
}

// Snapshot возвращает последнее известное состояние корзины или nil.
func (c *Carts) Snapshot() *entities.Cart {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// Get загружает корзину.
func (c *Carts) Get(ctx context.Context) (*entities.Cart, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	var cart entities.Cart
	if err := c.client.Get(ctx, "/cart/", nil, &cart); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetCart, err)
	}
	if cart.Items == nil {
		cart.Items = []entities.CartItem{}
	}

	c.remember(&cart)
	return &cart, nil
}

// Count возвращает число позиций в корзине; гость всегда видит ноль.
func (c *Carts) Count(ctx context.Context) (int, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return 0, nil
	}

	var count entities.CartCount
	if err := c.client.Get(ctx, "/cart/count/", nil, &count); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrorFailedCountCart, err)
	}
	return count.Count, nil
}

// Add добавляет товар и возвращает обновленную корзину.
func (c *Carts) Add(ctx context.Context, req *entities.AddToCartRequest) (*entities.Cart, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}
	if err := c.validator.Validate(req); err != nil {
		return nil, err
	}

	body := *req
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	if err := c.client.Post(ctx, "/cart/add/", &body, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedAddToCart, err)
	}
	return c.Get(ctx)
}

// UpdateQuantity меняет количество; ноль и меньше удаляют позицию.
func (c *Carts) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*entities.Cart, error) {
	if quantity <= 0 {
		return c.Remove(ctx, itemID)
	}
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	body := map[string]int{"quantity": quantity}
	if err := c.client.Patch(ctx, "/cart/item/"+url.PathEscape(itemID)+"/", body, nil); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedUpdateItem, err)
	}
	return c.Get(ctx)
}

// Remove удаляет позицию.
func (c *Carts) Remove(ctx context.Context, itemID string) (*entities.Cart, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	if err := c.client.Delete(ctx, "/cart/item/"+url.PathEscape(itemID)+"/remove/", nil); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedRemoveItem, err)
	}
	return c.Get(ctx)
}

// Clear очищает корзину.
func (c *Carts) Clear(ctx context.Context) (*entities.Cart, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	if err := c.client.Delete(ctx, "/cart/clear/", nil); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedClearCart, err)
	}
	return c.Get(ctx)
}

// Checkout оформляет заказ из корзины. По умолчанию оплата через виджет.
func (c *Carts) Checkout(ctx context.Context, req *entities.CartCheckoutRequest) (*entities.CheckoutResult, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	body := entities.CartCheckoutRequest{PaymentMethod: entities.PaymentMidtrans}
	if req != nil {
		body.KodeKupon = req.KodeKupon
		if req.PaymentMethod != "" {
			body.PaymentMethod = req.PaymentMethod
		}
	}

	var result entities.CheckoutResult
	if err := c.client.Post(ctx, "/cart/checkout/", &body, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedCheckout, err)
	}

	c.remember(nil)
	return &result, nil
}

// Refresh перечитывает корзину; ошибка только логируется.
func (c *Carts) Refresh(ctx context.Context) {
	if _, err := c.Get(ctx); err != nil {
		logger.Log(ctx).Warn(ctx, LogCartRefreshFailed, zap.Error(err))
	}
}

// Reset забывает корзину при выходе пользователя.
func (c *Carts) Reset(ctx context.Context, identity *entities.Identity) {
	if identity != nil {
		return
	}
	c.remember(nil)
	logger.Log(ctx).Debug(ctx, LogCartReset)
}

func (c *Carts) remember(cart *entities.Cart) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last = cart
}
