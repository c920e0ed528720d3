package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/internal/storefront/ports/navigation"
	"gamestore/internal/storefront/ports/payment"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogPaymentSucceeded = "payment succeeded"
	LogPaymentPending   = "payment pending"
	LogPaymentFailed    = "payment failed"
	LogPaymentClosed    = "payment widget closed"

	ErrorFailedValidateCoupon = "failed to validate coupon"
	ErrorFailedCreatePurchase = "failed to create purchase"
	ErrorFailedVerifyCrypto   = "failed to verify crypto transfer"
	ErrorFailedOpenPayment    = "failed to open payment"
)

// ErrNoPaymentToken возвращается, если бэкенд не выдал токен оплаты.
var ErrNoPaymentToken = errors.New("payment token was not issued")

// Checkout создает покупки и проводит их оплату через виджет.
type Checkout struct {
	client     *api.Client
	identities Identities
	validator  Validator
	widget     payment.Widget
	navigator  navigation.Navigator
	carts      *Carts
}

// NewCheckout создает сервис оформления покупок.
func NewCheckout(
	client *api.Client,
	identities Identities,
	validator Validator,
	widget payment.Widget,
	navigator navigation.Navigator,
	carts *Carts,
) *Checkout {
	return &Checkout{
		client:     client,
		identities: identities,
		validator:  validator,
		widget:     widget,
		navigator:  navigator,
		carts:      carts,
	}
}

// ValidateAccountCoupon проверяет купон для аккаунта.
func (c *Checkout) ValidateAccountCoupon(ctx context.Context, code, accountID string) (*entities.CouponValidation, error) {
	return c.validateCoupon(ctx, "/validate-coupon-akun/", &entities.CouponValidationRequest{
		KodeKupon: code,
		AccountID: accountID,
	})
}

// ValidateTopUpCoupon проверяет купон для пакета пополнения.
func (c *Checkout) ValidateTopUpCoupon(ctx context.Context, code, productID string) (*entities.CouponValidation, error) {
	return c.validateCoupon(ctx, "/validate-coupon-topup/", &entities.CouponValidationRequest{
		KodeKupon: code,
		ProductID: productID,
	})
}

// validateCoupon возвращает отказ бэкенда (400) как невалидный купон, а не как ошибку.
func (c *Checkout) validateCoupon(
	ctx context.Context,
	path string,
	req *entities.CouponValidationRequest,
) (*entities.CouponValidation, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}
	if err := c.validator.Validate(req); err != nil {
		return nil, err
	}

	var result entities.CouponValidation
	err := c.client.Post(ctx, path, req, &result)
	if apiErr, ok := api.AsAPIError(err); ok && apiErr.StatusCode == http.StatusBadRequest {
		return &entities.CouponValidation{KodeKupon: req.KodeKupon, Error: apiErr.Message()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedValidateCoupon, err)
	}
	return &result, nil
}

// BuyAccount создает покупку аккаунта и открывает оплату.
func (c *Checkout) BuyAccount(ctx context.Context, req *entities.AccountPurchaseRequest) (*entities.CheckoutResult, error) {
	if err := c.validator.Validate(req); err != nil {
		return nil, err
	}
	return c.purchase(ctx, "/pembelian/create-akun/", req)
}

// BuyTopUp создает покупку пакета пополнения и открывает оплату.
func (c *Checkout) BuyTopUp(ctx context.Context, req *entities.TopUpPurchaseRequest) (*entities.CheckoutResult, error) {
	if err := c.validator.Validate(req); err != nil {
		return nil, err
	}
	return c.purchase(ctx, "/pembelian/create-topup/", req)
}

func (c *Checkout) purchase(ctx context.Context, path string, body any) (*entities.CheckoutResult, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}

	var result entities.CheckoutResult
	if err := c.client.Post(ctx, path, body, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedCreatePurchase, err)
	}
	if !result.NeedsWidget() {
		return nil, fmt.Errorf("%s: %w", ErrorFailedCreatePurchase, ErrNoPaymentToken)
	}

	if err := c.Pay(ctx, result.MidtransToken); err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckoutCart оформляет корзину. Оплата через виджет открывается сразу,
// для крипто-перевода возвращаются реквизиты.
func (c *Checkout) CheckoutCart(ctx context.Context, req *entities.CartCheckoutRequest) (*entities.CheckoutResult, error) {
	result, err := c.carts.Checkout(ctx, req)
	if err != nil {
		return nil, err
	}

	if result.NeedsWidget() {
		if err := c.Pay(ctx, result.MidtransToken); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// VerifyCrypto отправляет хеш транзакции крипто-перевода.
func (c *Checkout) VerifyCrypto(ctx context.Context, req *entities.CryptoVerifyRequest) (*entities.MessageResponse, error) {
	if _, err := c.identities.RequireIdentity(); err != nil {
		return nil, err
	}
	if err := c.validator.Validate(req); err != nil {
		return nil, err
	}

	var result entities.MessageResponse
	if err := c.client.Post(ctx, "/pembelian/verify-crypto/", req, &result); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedVerifyCrypto, err)
	}
	c.carts.Refresh(ctx)
	return &result, nil
}

// Pay открывает виджет. Успех и ожидание ведут в профиль, ошибка и
// закрытие виджета перечитывают корзину.
func (c *Checkout) Pay(ctx context.Context, token string) error {
	log := logger.Log(ctx).With(zap.String("token", token))

	callbacks := payment.Callbacks{
		OnSuccess: func(ctx context.Context, _ map[string]any) {
			log.Info(ctx, LogPaymentSucceeded)
			c.navigator.Navigate(ctx, navigation.PathProfile)
		},
		OnPending: func(ctx context.Context, _ map[string]any) {
			log.Info(ctx, LogPaymentPending)
			c.navigator.Navigate(ctx, navigation.PathProfile)
		},
		OnError: func(ctx context.Context, payload map[string]any) {
			log.Warn(ctx, LogPaymentFailed, zap.Any("payload", payload))
			c.carts.Refresh(ctx)
		},
		OnClose: func(ctx context.Context) {
			log.Info(ctx, LogPaymentClosed)
			c.carts.Refresh(ctx)
		},
	}

	if err := c.widget.Pay(ctx, token, callbacks); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedOpenPayment, err)
	}
	return nil
}
