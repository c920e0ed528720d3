package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"gamestore/internal/storefront/adapters/api"
	"gamestore/internal/storefront/domain/entities"
	"gamestore/pkg/logger"
)

// Константы для логирования.
const (
	LogProductSaved   = "admin product saved"
	LogProductDeleted = "admin product deleted"
	LogCouponCreated  = "admin coupon created"

	ErrorFailedGetStats       = "failed to get dashboard stats"
	ErrorFailedGetAnalytics   = "failed to get analytics"
	ErrorFailedListProducts   = "failed to list admin products"
	ErrorFailedDeleteProduct  = "failed to delete product"
	ErrorFailedSaveProduct    = "failed to save product"
	ErrorFailedGetProduct     = "failed to get product detail"
	ErrorFailedListCoupons    = "failed to list coupons"
	ErrorFailedCreateCoupon   = "failed to create coupon"
	ErrorFailedToggleCoupon   = "failed to toggle coupon"
	ErrorFailedListAdminOrder = "failed to list admin orders"
)

// Admin - операции панели администратора. Все методы требуют сотрудника магазина.
type Admin struct {
	client     *api.Client
	identities Identities
	validator  Validator
	catalog    *Catalog
}

// NewAdmin создает сервис админки.
func NewAdmin(client *api.Client, identities Identities, validator Validator, catalog *Catalog) *Admin {
	return &Admin{
		client:     client,
		identities: identities,
		validator:  validator,
		catalog:    catalog,
	}
}

// DashboardStats возвращает сводку главной страницы.
func (a *Admin) DashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	if _, err := a.identities.RequireStaff(); err != nil {
		return nil, err
	}

	var stats entities.DashboardStats
	if err := a.client.Get(ctx, "/admin/dashboard-stats/", nil, &stats); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetStats, err)
	}
	return &stats, nil
}

// Analytics возвращает аналитику вместе с исходным ответом.
func (a *Admin) Analytics(ctx context.Context) (*entities.Analytics, error) {
	if _, err := a.identities.RequireStaff(); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := a.client.Get(ctx, "/admin/analytics/", nil, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetAnalytics, err)
	}

	var analytics entities.Analytics
	if err := json.Unmarshal(raw, &analytics); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetAnalytics, err)
	}
	analytics.Raw = raw
	return &analytics, nil
}

// Products возвращает товары по фильтру.
func (a *Admin) Products(ctx context.Context, filter entities.ProductFilter) ([]entities.AdminProduct, error) {
	if _, err := a.identities.RequireStaff(); err != nil {
		return nil, err
	}

	products, err := api.GetList[entities.AdminProduct](ctx, a.client, "/admin/all-products/", filter.Query())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListProducts, err)
	}
	return products, nil
}

// DeleteProduct удаляет аккаунт или пакет пополнения.
func (a *Admin) DeleteProduct(ctx context.Context, req *entities.DeleteProductRequest) error {
	if _, err := a.identities.RequireStaff(); err != nil {
		return err
	}
	if err := a.validator.Validate(req); err != nil {
		return err
	}

	if err := a.client.Post(ctx, "/admin/product/delete/", req, nil); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedDeleteProduct, err)
	}

	a.catalog.Invalidate(ctx)
	logger.Log(ctx).Info(ctx, LogProductDeleted, zap.String("tipe", req.Tipe), zap.String("id", req.ID))
	return nil
}

// AccountProduct возвращает аккаунт для формы редактирования.
func (a *Admin) AccountProduct(ctx context.Context, id string) (*entities.GameAccount, error) {
	if _, err := a.identities.RequireStaff(); err != nil {
		return nil, err
	}

	var account entities.GameAccount
	if err := a.client.Get(ctx, "/admin/akun/"+url.PathEscape(id)+"/detail/", nil, &account); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetProduct, err)
	}
	return &account, nil
}

// CreateAccountProduct создает аккаунт на продажу.
func (a *Admin) CreateAccountProduct(
	ctx context.Context,
	in *entities.AccountProductInput,
	cover *entities.FormFile,
	gallery []entities.FormFile,
) error {
	return a.saveAccount(ctx, "/admin/akun/create/", in, cover, gallery)
}

// UpdateAccountProduct изменяет аккаунт на продажу.
func (a *Admin) UpdateAccountProduct(
	ctx context.Context,
	id string,
	in *entities.AccountProductInput,
	cover *entities.FormFile,
	gallery []entities.FormFile,
) error {
	return a.saveAccount(ctx, "/admin/akun/"+url.PathEscape(id)+"/update/", in, cover, gallery)
}

func (a *Admin) saveAccount(
	ctx context.Context,
	path string,
	in *entities.AccountProductInput,
	cover *entities.FormFile,
	gallery []entities.FormFile,
) error {
	if _, err := a.identities.RequireStaff(); err != nil {
		return err
	}
	if err := a.validator.Validate(in); err != nil {
		return err
	}
	return a.saveProduct(ctx, path, in.Form(cover, gallery))
}

// TopUpProduct возвращает пакет пополнения для формы редактирования.
func (a *Admin) TopUpProduct(ctx context.Context, id string) (*entities.TopUpProduct, error) {
	if _, err := a.identities.RequireStaff(); err != nil {
		return nil, err
	}

	var product entities.TopUpProduct
	if err := a.client.Get(ctx, "/admin/topup/"+url.PathEscape(id)+"/detail/", nil, &product); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedGetProduct, err)
	}
	return &product, nil
}

// CreateTopUpProduct создает пакет пополнения.
func (a *Admin) CreateTopUpProduct(ctx context.Context, in *entities.TopUpProductInput, image *entities.FormFile) error {
	return a.saveTopUp(ctx, "/admin/topup/create/", in, image)
}

// UpdateTopUpProduct изменяет пакет пополнения.
func (a *Admin) UpdateTopUpProduct(ctx context.Context, id string, in *entities.TopUpProductInput, image *entities.FormFile) error {
	return a.saveTopUp(ctx, "/admin/topup/"+url.PathEscape(id)+"/update/", in, image)
}

func (a *Admin) saveTopUp(ctx context.Context, path string, in *entities.TopUpProductInput, image *entities.FormFile) error {
	if _, err := a.identities.RequireStaff(); err != nil {
		return err
	}
	if err := a.validator.Validate(in); err != nil {
		return err
	}
	return a.saveProduct(ctx, path, in.Form(image))
}

func (a *Admin) saveProduct(ctx context.Context, path string, form *entities.ProductForm) error {
	if err := a.client.PostMultipart(ctx, path, form, nil); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedSaveProduct, err)
	}

	a.catalog.Invalidate(ctx)
	logger.Log(ctx).Info(ctx, LogProductSaved, zap.String("path", path))
	return nil
}

// Coupons возвращает все купоны.
func (a *Admin) Coupons(ctx context.Context) ([]entities.Coupon, error) {
	if _, err := a.identities.RequireStaff(); err != nil {
		return nil, err
	}

	coupons, err := api.GetList[entities.Coupon](ctx, a.client, "/admin/all-coupons/", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListCoupons, err)
	}
	return coupons, nil
}

// CreateCoupon создает купон.
func (a *Admin) CreateCoupon(ctx context.Context, req *entities.CouponCreateRequest) error {
	if _, err := a.identities.RequireStaff(); err != nil {
		return err
	}
	if err := a.validator.Validate(req); err != nil {
		return err
	}

	if err := a.client.Post(ctx, "/admin/coupon/create/", req, nil); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedCreateCoupon, err)
	}

	logger.Log(ctx).Info(ctx, LogCouponCreated, zap.String("kode", req.Kode))
	return nil
}

// ToggleCoupon включает или выключает купон.
func (a *Admin) ToggleCoupon(ctx context.Context, id string) error {
	if _, err := a.identities.RequireStaff(); err != nil {
		return err
	}

	if err := a.client.Post(ctx, "/admin/coupon/"+url.PathEscape(id)+"/toggle-active/", nil, nil); err != nil {
		return fmt.Errorf("%s: %w", ErrorFailedToggleCoupon, err)
	}
	return nil
}

// Orders возвращает все заказы магазина.
func (a *Admin) Orders(ctx context.Context) ([]entities.AdminOrder, error) {
	if _, err := a.identities.RequireStaff(); err != nil {
		return nil, err
	}

	orders, err := api.GetList[entities.AdminOrder](ctx, a.client, "/admin/all-orders/", nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrorFailedListAdminOrder, err)
	}
	return orders, nil
}
